package skema

import "strconv"

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindAbsent marks a mapping key that was not present. Parsers never
	// produce it and serializers drop it.
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the generic parsed-but-untyped data tree. The zero Value is
// absent.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the literal JSON text of a number
	items   []Value
	members []Member
}

// Member is one key/value pair of a mapping.
type Member struct {
	Key   string
	Value Value
}

// AbsentValue returns the absence marker.
func AbsentValue() Value { return Value{} }

// NullValue returns the JSON null.
func NullValue() Value { return Value{kind: KindNull} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, text: s} }

// NumberValue wraps the literal JSON number text. The text is not validated;
// use FloatValue when starting from a float.
func NumberValue(text string) Value { return Value{kind: KindNumber, text: text} }

// FloatValue formats f the way encoding/json does.
func FloatValue(f float64) Value {
	return Value{kind: KindNumber, text: formatFloat(f)}
}

// SequenceValue wraps items as an ordered sequence.
func SequenceValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// MappingValue builds a mapping from members. A repeated key replaces the
// earlier value in place, keeping the first position.
func MappingValue(members ...Member) Value {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if i := indexOf(out, m.Key); i >= 0 {
			out[i].Value = m.Value
			continue
		}
		out = append(out, m)
	}
	return Value{kind: KindMapping, members: out}
}

func indexOf(members []Member, key string) int {
	for i := range members {
		if members[i].Key == key {
			return i
		}
	}
	return -1
}

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the absence marker.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Bool returns the boolean payload; ok is false for other kinds.
func (v Value) Bool() (b bool, ok bool) { return v.boolean, v.kind == KindBool }

// Str returns the string payload; ok is false for other kinds.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// NumberText returns the literal text of a number.
func (v Value) NumberText() (s string, ok bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.text, true
}

// Float parses a number as float64.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Items returns the elements of a sequence. The slice must not be modified.
func (v Value) Items() []Value { return v.items }

// Members returns the members of a mapping in source order. The slice must
// not be modified.
func (v Value) Members() []Member { return v.members }

// Len is the number of elements or members.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.members)
	}
	return 0
}

// Get looks up key in a mapping. A missing key yields the absence marker.
func (v Value) Get(key string) Value {
	if v.kind != KindMapping {
		return Value{}
	}
	if i := indexOf(v.members, key); i >= 0 {
		return v.members[i].Value
	}
	return Value{}
}

// Equal reports structural equality. Mapping key order is ignored, sequence
// order is not. Numbers compare by value when both parse.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindBool:
		return v.boolean == o.boolean
	case KindString:
		return v.text == o.text
	case KindNumber:
		if v.text == o.text {
			return true
		}
		a, okA := v.Float()
		b, okB := o.Float()
		return okA && okB && a == b
	case KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.members) != len(o.members) {
			return false
		}
		for _, m := range v.members {
			j := indexOf(o.members, m.Key)
			if j < 0 || !m.Value.Equal(o.members[j].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v as compact JSON; the absence marker renders as "absent".
func (v Value) String() string {
	if v.kind == KindAbsent {
		return "absent"
	}
	b, err := appendJSON(nil, v, "", 0)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}
