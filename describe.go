package skema

import "strings"

// Describe renders the human description of d used in violations. It is
// purely diagnostic text and never drives control flow.
func Describe(d Descriptor) string {
	switch t := d.(type) {
	case *Primitive:
		return t.Kind.String()
	case *EnumSet:
		return "one of [" + strings.Join(t.cases, ", ") + "]"
	case *Array:
		return "an array of " + Describe(t.Elem)
	case *Union:
		if len(t.Alts) == 2 {
			if t.Alts[0] == SpecialAbsent {
				return optional(Describe(t.Alts[1]))
			}
			if t.Alts[1] == SpecialAbsent {
				return optional(Describe(t.Alts[0]))
			}
		}
		parts := make([]string, len(t.Alts))
		for i, a := range t.Alts {
			parts[i] = Describe(a)
		}
		return "one of [" + strings.Join(parts, ", ") + "]"
	case *Object:
		if t.IsMap() {
			return "a map of " + Describe(t.additional)
		}
		return "an object"
	case *Reference:
		return t.Name
	case Special:
		switch t {
		case SpecialAny:
			return "anything"
		case SpecialNever:
			return "nothing"
		case SpecialNull:
			return "null"
		case SpecialAbsent:
			return "absent"
		}
	}
	return "unknown"
}

// optional renders "an optional X", dropping X's own leading article.
func optional(inner string) string {
	for _, article := range []string{"an ", "a "} {
		if rest, ok := strings.CutPrefix(inner, article); ok {
			inner = rest
			break
		}
	}
	return "an optional " + inner
}
