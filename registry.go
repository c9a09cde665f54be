package skema

import (
	"errors"
	"fmt"
	"sort"
)

// Registry is the immutable name→Descriptor table that references resolve
// against. References are followed lazily at transform time, so recursive
// and mutually recursive schemas never expand eagerly.
type Registry struct {
	defs  map[string]Descriptor
	names []string
}

// NewRegistry copies defs into a Registry. It fails when a reference names a
// missing entry or when references form a cycle that never reaches a concrete
// descriptor (A → B → A); cycles through objects, arrays or unions are fine.
func NewRegistry(defs map[string]Descriptor) (*Registry, error) {
	r := &Registry{defs: make(map[string]Descriptor, len(defs))}
	for name, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("skema: registry entry %q has a nil descriptor", name)
		}
		r.defs[name] = d
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	var errs []error
	seen := make(map[Descriptor]bool)
	for _, name := range r.names {
		for _, ref := range collectRefs(r.defs[name], seen, nil) {
			if _, ok := r.defs[ref]; !ok {
				errs = append(errs, fmt.Errorf("skema: %q references unknown %q", name, ref))
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	for _, name := range r.names {
		if err := r.checkAliasCycle(name); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustRegistry is NewRegistry for schemas built at process start; it panics
// on error.
func MustRegistry(defs map[string]Descriptor) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// collectRefs lists every reference name reachable from d without crossing a
// reference. seen guards against descriptor graphs wired into loops by hand.
func collectRefs(d Descriptor, seen map[Descriptor]bool, out []string) []string {
	if seen[d] {
		return out
	}
	switch t := d.(type) {
	case *Reference:
		return append(out, t.Name)
	case *Array:
		seen[d] = true
		return collectRefs(t.Elem, seen, out)
	case *Union:
		seen[d] = true
		for _, a := range t.Alts {
			out = collectRefs(a, seen, out)
		}
	case *Object:
		seen[d] = true
		for _, f := range t.fields {
			out = collectRefs(f.Descriptor, seen, out)
		}
		if t.additional != nil {
			out = collectRefs(t.additional, seen, out)
		}
	}
	return out
}

func (r *Registry) checkAliasCycle(start string) error {
	visited := map[string]bool{start: true}
	d := r.defs[start]
	for {
		ref, ok := d.(*Reference)
		if !ok {
			return nil
		}
		if visited[ref.Name] {
			return fmt.Errorf("skema: reference cycle through %q never reaches a concrete descriptor", start)
		}
		visited[ref.Name] = true
		d = r.defs[ref.Name]
	}
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.defs[name]
	return d, ok
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Resolve follows reference chains until a concrete descriptor is reached and
// returns it with the last resolved name ("" when d was not a reference).
// An unknown name is a schema bug, not a data error: Resolve panics with
// *UnknownReferenceError.
func (r *Registry) Resolve(d Descriptor) (Descriptor, string) {
	name := ""
	for hops := 0; ; hops++ {
		ref, ok := d.(*Reference)
		if !ok {
			return d, name
		}
		next, found := r.Lookup(ref.Name)
		if !found {
			panic(&UnknownReferenceError{Name: ref.Name})
		}
		if hops > len(r.defs) {
			panic(fmt.Sprintf("skema: reference cycle through %q", ref.Name))
		}
		d, name = next, ref.Name
	}
}
