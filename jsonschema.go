package skema

import (
	"fmt"

	"github.com/reoring/skema/jsonschema"
)

// JSONSchema projects the registry type root, and every type reachable from
// it, into a JSON Schema document. References become "#/$defs/<name>" and
// closed objects forbid additional properties.
func (r *Registry) JSONSchema(root string) (*jsonschema.Schema, error) {
	if _, ok := r.Lookup(root); !ok {
		return nil, fmt.Errorf("skema: unknown type %q", root)
	}
	p := &projector{reg: r, defs: map[string]*jsonschema.Schema{}}
	out := p.project(Ref(root))
	p.drain()
	out.Schema = jsonschema.Draft
	out.Defs = p.defs
	return out, nil
}

// JSONSchema describes the batch the codec decodes: an array of the root type.
func (c *Codec) JSONSchema() (*jsonschema.Schema, error) {
	rs, err := c.reg.JSONSchema(c.root)
	if err != nil {
		return nil, err
	}
	return &jsonschema.Schema{
		Schema: rs.Schema,
		Title:  c.root + " list",
		Type:   "array",
		Items:  &jsonschema.Schema{Ref: rs.Ref},
		Defs:   rs.Defs,
	}, nil
}

type projector struct {
	reg     *Registry
	defs    map[string]*jsonschema.Schema
	pending []string
}

func (p *projector) drain() {
	for len(p.pending) > 0 {
		name := p.pending[0]
		p.pending = p.pending[1:]
		d, _ := p.reg.Lookup(name)
		p.defs[name] = p.project(d)
	}
}

func (p *projector) project(d Descriptor) *jsonschema.Schema {
	switch t := d.(type) {
	case *Reference:
		if _, seen := p.defs[t.Name]; !seen {
			p.defs[t.Name] = nil // reserved until drained
			p.pending = append(p.pending, t.Name)
		}
		return &jsonschema.Schema{Ref: jsonschema.DefRef(t.Name)}
	case *Primitive:
		switch t.Kind {
		case PrimitiveBoolean:
			return &jsonschema.Schema{Type: "boolean"}
		case PrimitiveNumber:
			return &jsonschema.Schema{Type: "number"}
		case PrimitiveTemporal:
			return &jsonschema.Schema{Type: "string", Format: "date-time"}
		}
		return &jsonschema.Schema{Type: "string"}
	case *EnumSet:
		cases := make([]any, len(t.cases))
		for i, c := range t.cases {
			cases[i] = c
		}
		return &jsonschema.Schema{Type: "string", Enum: cases}
	case *Array:
		return &jsonschema.Schema{Type: "array", Items: p.project(t.Elem)}
	case *Union:
		var alts []*jsonschema.Schema
		for _, a := range t.Alts {
			if a == SpecialAbsent {
				continue
			}
			alts = append(alts, p.project(a))
		}
		switch len(alts) {
		case 0:
			return &jsonschema.Schema{Not: &jsonschema.Schema{}}
		case 1:
			return alts[0]
		}
		return &jsonschema.Schema{AnyOf: alts}
	case *Object:
		s := &jsonschema.Schema{Type: "object"}
		if len(t.fields) > 0 {
			s.Properties = make(map[string]*jsonschema.Schema, len(t.fields))
		}
		for _, f := range t.fields {
			s.Properties[f.External] = p.project(f.Descriptor)
			if !p.reg.acceptsAbsent(f.Descriptor, map[string]bool{}) {
				s.Required = append(s.Required, f.External)
			}
		}
		switch {
		case t.additional == nil:
			s.AdditionalProperties = false
		case t.additional == SpecialAny:
			s.AdditionalProperties = true
		default:
			s.AdditionalProperties = p.project(t.additional)
		}
		return s
	case Special:
		switch t {
		case SpecialNull:
			return &jsonschema.Schema{Type: "null"}
		case SpecialAny:
			return &jsonschema.Schema{}
		}
		return &jsonschema.Schema{Not: &jsonschema.Schema{}}
	}
	panic(fmt.Sprintf("skema: unhandled descriptor %T", d))
}

// acceptsAbsent reports whether d admits a missing key, following references.
func (r *Registry) acceptsAbsent(d Descriptor, visiting map[string]bool) bool {
	switch t := d.(type) {
	case *Reference:
		if visiting[t.Name] {
			return false
		}
		visiting[t.Name] = true
		next, ok := r.Lookup(t.Name)
		return ok && r.acceptsAbsent(next, visiting)
	case *Union:
		for _, a := range t.Alts {
			if r.acceptsAbsent(a, visiting) {
				return true
			}
		}
	case Special:
		return t == SpecialAbsent || t == SpecialAny
	}
	return false
}
