package skema

import "fmt"

// Descriptor is a schema node describing the accepted shape of a Value.
// The set of variants is closed: *Primitive, *EnumSet, *Array, *Union,
// *Object, *Reference and Special. Build them with the constructor
// functions below.
type Descriptor interface {
	descriptor()
}

// PrimitiveKind identifies a scalar descriptor.
type PrimitiveKind uint8

const (
	PrimitiveBoolean PrimitiveKind = iota
	PrimitiveNumber
	PrimitiveString
	// PrimitiveTemporal accepts a date-like string and normalizes it to
	// canonical RFC 3339.
	PrimitiveTemporal
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBoolean:
		return "boolean"
	case PrimitiveNumber:
		return "number"
	case PrimitiveString:
		return "string"
	case PrimitiveTemporal:
		return "date"
	default:
		return "unknown"
	}
}

// Primitive requires the value's runtime kind to match exactly.
type Primitive struct {
	Kind PrimitiveKind
}

func (*Primitive) descriptor() {}

var (
	booleanPrimitive  = &Primitive{Kind: PrimitiveBoolean}
	numberPrimitive   = &Primitive{Kind: PrimitiveNumber}
	stringPrimitive   = &Primitive{Kind: PrimitiveString}
	temporalPrimitive = &Primitive{Kind: PrimitiveTemporal}
)

func Boolean() *Primitive  { return booleanPrimitive }
func Number() *Primitive   { return numberPrimitive }
func String() *Primitive   { return stringPrimitive }
func Temporal() *Primitive { return temporalPrimitive }

// EnumSet accepts a string equal to exactly one of its cases.
type EnumSet struct {
	cases []string
	set   map[string]struct{}
}

func (*EnumSet) descriptor() {}

// Enum builds an EnumSet. Repeated cases are collapsed.
func Enum(cases ...string) *EnumSet {
	e := &EnumSet{set: make(map[string]struct{}, len(cases))}
	for _, c := range cases {
		if _, dup := e.set[c]; dup {
			continue
		}
		e.set[c] = struct{}{}
		e.cases = append(e.cases, c)
	}
	return e
}

// Cases returns the literals in declared order.
func (e *EnumSet) Cases() []string { return append([]string(nil), e.cases...) }

// Has reports whether s is one of the literals.
func (e *EnumSet) Has(s string) bool {
	_, ok := e.set[s]
	return ok
}

// Array accepts a sequence whose every element matches Elem.
type Array struct {
	Elem Descriptor
}

func (*Array) descriptor() {}

func ArrayOf(elem Descriptor) *Array {
	mustDescriptor(elem, "ArrayOf element")
	return &Array{Elem: elem}
}

// Union tries Alts in declared order; the first match wins.
type Union struct {
	Alts []Descriptor
}

func (*Union) descriptor() {}

func UnionOf(alts ...Descriptor) *Union {
	for i, a := range alts {
		mustDescriptor(a, fmt.Sprintf("UnionOf alternative %d", i))
	}
	return &Union{Alts: alts}
}

// Optional accepts an absent key or a value matching d. Absence is tested
// first so that present values never collapse into absence.
func Optional(d Descriptor) *Union { return UnionOf(Absent(), d) }

// FieldSpec binds a wire key to a record key.
type FieldSpec struct {
	External   string // key in the wire mapping
	Internal   string // key in the produced Record
	Descriptor Descriptor
}

// Field declares a field whose wire and record keys are the same.
func Field(name string, d Descriptor) FieldSpec {
	return FieldSpec{External: name, Internal: name, Descriptor: d}
}

// Rename declares a field whose record key differs from its wire key.
func Rename(external, internal string, d Descriptor) FieldSpec {
	return FieldSpec{External: external, Internal: internal, Descriptor: d}
}

// Object accepts a mapping. Declared fields are looked up by key; every other
// key goes through the additional descriptor, or is rejected when there is
// none (closed record).
type Object struct {
	fields     []FieldSpec
	additional Descriptor
	byExternal map[string]int
	byInternal map[string]int
}

func (*Object) descriptor() {}

// ObjectOf builds an object descriptor. A nil additional makes the record
// closed. The key lookup tables are built here and never mutated, so an
// Object is safe for concurrent use from the moment it exists.
//
// ObjectOf panics when two fields share an external or an internal key.
func ObjectOf(additional Descriptor, fields ...FieldSpec) *Object {
	o := &Object{
		fields:     append([]FieldSpec(nil), fields...),
		additional: additional,
		byExternal: make(map[string]int, len(fields)),
		byInternal: make(map[string]int, len(fields)),
	}
	for i, f := range o.fields {
		mustDescriptor(f.Descriptor, "field "+f.External)
		if _, dup := o.byExternal[f.External]; dup {
			panic(fmt.Sprintf("skema: duplicate external key %q", f.External))
		}
		if _, dup := o.byInternal[f.Internal]; dup {
			panic(fmt.Sprintf("skema: duplicate internal key %q", f.Internal))
		}
		o.byExternal[f.External] = i
		o.byInternal[f.Internal] = i
	}
	return o
}

// Closed builds a closed record.
func Closed(fields ...FieldSpec) *Object { return ObjectOf(nil, fields...) }

// MapOf builds an open record whose every value matches d.
func MapOf(d Descriptor) *Object {
	mustDescriptor(d, "MapOf value")
	return ObjectOf(d)
}

// Fields returns a copy of the declared fields.
func (o *Object) Fields() []FieldSpec { return append([]FieldSpec(nil), o.fields...) }

// Additional returns the descriptor applied to undeclared keys, or nil.
func (o *Object) Additional() Descriptor { return o.additional }

// IsClosed reports whether undeclared keys are rejected.
func (o *Object) IsClosed() bool { return o.additional == nil }

// IsMap reports whether o is an open map with no declared fields.
func (o *Object) IsMap() bool { return len(o.fields) == 0 && o.additional != nil }

// fieldIndex looks key up on the side that drives iteration for dir.
func (o *Object) fieldIndex(key string, dir Direction) (int, bool) {
	if dir == Encode {
		i, ok := o.byInternal[key]
		return i, ok
	}
	i, ok := o.byExternal[key]
	return i, ok
}

// Reference names a Registry entry. Chains of references are followed until
// a concrete descriptor is reached.
type Reference struct {
	Name string
}

func (*Reference) descriptor() {}

func Ref(name string) *Reference { return &Reference{Name: name} }

// Special is a structural placeholder descriptor.
type Special uint8

const (
	// SpecialAny accepts every value and passes it through unchanged.
	SpecialAny Special = iota
	// SpecialNever rejects every value.
	SpecialNever
	// SpecialNull accepts only the JSON null.
	SpecialNull
	// SpecialAbsent accepts only a missing key.
	SpecialAbsent
)

func (Special) descriptor() {}

func Any() Special    { return SpecialAny }
func Never() Special  { return SpecialNever }
func Null() Special   { return SpecialNull }
func Absent() Special { return SpecialAbsent }

func mustDescriptor(d Descriptor, what string) {
	if d == nil {
		panic("skema: nil descriptor for " + what)
	}
}
