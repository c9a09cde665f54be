package skema

import (
	"errors"
	"fmt"
	"strconv"

	eng "github.com/reoring/skema/internal/engine"
	"github.com/reoring/skema/internal/temporal"
)

// Direction selects which side's keys drive object iteration.
type Direction uint8

const (
	// Decode reads external (wire) keys and writes internal (record) keys.
	Decode Direction = iota
	// Encode reads internal keys and writes external keys.
	Encode
)

func (d Direction) String() string {
	if d == Encode {
		return "encode"
	}
	return "decode"
}

// site locates the value being transformed for diagnostics.
type site struct {
	key    string // mapping key holding the value
	parent string // registry name of the enclosing object
	path   string // JSON Pointer into the source value
}

func (s site) child(key, parent string) site {
	return site{key: key, parent: parent, path: eng.JoinPointer(s.path, key)}
}

func (s site) index(i int) site {
	return site{key: s.key, parent: s.parent, path: eng.JoinPointer(s.path, strconv.Itoa(i))}
}

func (s site) fail(code, expected string, v Value) *Violation {
	if v.kind == KindAbsent {
		code = CodeRequired
	}
	p := s.path
	if p == "" {
		p = "/"
	}
	return &Violation{Code: code, Path: p, Key: s.key, Enclosing: s.parent, Expected: expected, Actual: v}
}

// Transform validates v against d and converts it in direction dir. The walk
// is fail-fast: the first violation aborts the call and no partial value is
// returned. A reference to a missing registry entry panics with
// *UnknownReferenceError.
func (r *Registry) Transform(v Value, d Descriptor, dir Direction) (Value, error) {
	out, viol := r.transform(v, d, dir, site{})
	if viol != nil {
		return Value{}, viol
	}
	return out, nil
}

func (r *Registry) transform(v Value, d Descriptor, dir Direction, at site) (Value, *Violation) {
	label := ""
	if ref, ok := d.(*Reference); ok {
		d, label = r.Resolve(ref)
	}

	switch t := d.(type) {
	case Special:
		switch t {
		case SpecialAny:
			return v, nil
		case SpecialNull:
			if v.kind == KindNull {
				return v, nil
			}
		case SpecialAbsent:
			if v.kind == KindAbsent {
				return v, nil
			}
		}
		return Value{}, at.fail(CodeInvalidType, Describe(t), v)

	case *EnumSet:
		if s, ok := v.Str(); ok && t.Has(s) {
			return v, nil
		}
		return Value{}, at.fail(CodeInvalidEnum, Describe(t), v)

	case *Union:
		var causes []error
		for _, alt := range t.Alts {
			out, viol := r.transform(v, alt, dir, at)
			if viol == nil {
				return out, nil
			}
			if alt != SpecialAbsent {
				causes = append(causes, viol)
			}
		}
		viol := at.fail(CodeInvalidUnion, Describe(t), v)
		viol.Cause = errors.Join(causes...)
		return Value{}, viol

	case *Array:
		if v.kind != KindSequence {
			return Value{}, at.fail(CodeInvalidType, expectedName(label, t), v)
		}
		out := make([]Value, len(v.items))
		for i, el := range v.items {
			o, viol := r.transform(el, t.Elem, dir, at.index(i))
			if viol != nil {
				return Value{}, viol
			}
			out[i] = o
		}
		return Value{kind: KindSequence, items: out}, nil

	case *Object:
		if v.kind != KindMapping {
			return Value{}, at.fail(CodeInvalidType, expectedName(label, t), v)
		}
		return r.transformObject(v, t, dir, at, label)

	case *Primitive:
		return transformPrimitive(v, t, at)

	case *Reference:
		// Resolve never returns a reference.
	}
	panic(fmt.Sprintf("skema: unhandled descriptor %T", d))
}

func (r *Registry) transformObject(v Value, o *Object, dir Direction, at site, label string) (Value, *Violation) {
	matched := make([]Value, len(o.fields))
	var extras []Member
	for _, m := range v.members {
		if i, ok := o.fieldIndex(m.Key, dir); ok {
			matched[i] = m.Value
			continue
		}
		extras = append(extras, m)
	}

	out := make([]Member, 0, len(o.fields)+len(extras))
	for i, f := range o.fields {
		src, dst := f.External, f.Internal
		if dir == Encode {
			src, dst = dst, src
		}
		fv, viol := r.transform(matched[i], f.Descriptor, dir, at.child(src, label))
		if viol != nil {
			return Value{}, viol
		}
		if fv.kind != KindAbsent {
			out = append(out, Member{Key: dst, Value: fv})
		}
	}

	for _, m := range extras {
		child := at.child(m.Key, label)
		if o.additional == nil {
			return Value{}, &Violation{
				Code:      CodeUnknownKey,
				Path:      child.path,
				Key:       m.Key,
				Enclosing: label,
				Expected:  Describe(Never()),
				Actual:    m.Value,
			}
		}
		ev, viol := r.transform(m.Value, o.additional, dir, child)
		if viol != nil {
			return Value{}, viol
		}
		if ev.kind != KindAbsent {
			out = append(out, Member{Key: m.Key, Value: ev})
		}
	}
	return Value{kind: KindMapping, members: out}, nil
}

func transformPrimitive(v Value, p *Primitive, at site) (Value, *Violation) {
	switch p.Kind {
	case PrimitiveBoolean:
		if v.kind == KindBool {
			return v, nil
		}
	case PrimitiveNumber:
		if v.kind == KindNumber {
			return v, nil
		}
	case PrimitiveString:
		if v.kind == KindString {
			return v, nil
		}
	case PrimitiveTemporal:
		return transformTemporal(v, at)
	}
	return Value{}, at.fail(CodeInvalidType, Describe(p), v)
}

// transformTemporal accepts an RFC 3339 (or calendar date) string, or a number
// of Unix milliseconds, and yields the canonical UTC RFC 3339 string in both
// directions.
func transformTemporal(v Value, at site) (Value, *Violation) {
	switch v.kind {
	case KindString:
		t, err := temporal.Parse(v.text)
		if err != nil {
			viol := at.fail(CodeInvalidFormat, Describe(Temporal()), v)
			viol.Cause = err
			return Value{}, viol
		}
		return StringValue(temporal.Format(t)), nil
	case KindNumber:
		if ms, ok := v.Float(); ok {
			return StringValue(temporal.Format(temporal.FromUnixMilli(ms))), nil
		}
	}
	return Value{}, at.fail(CodeInvalidType, Describe(Temporal()), v)
}

// expectedName prefers the registry name of a resolved reference, the way
// diagnostics name "Country" rather than "an object".
func expectedName(label string, d Descriptor) string {
	if label != "" {
		return label
	}
	return Describe(d)
}
