package skema

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

var errAbsentValue = errors.New("skema: absent value has no JSON representation")

// MarshalValue renders v as JSON. A non-empty indent pretty-prints with that
// unit per nesting level.
func MarshalValue(v Value, indent string) ([]byte, error) {
	return appendJSON(nil, v, indent, 0)
}

// WriteValue renders v as JSON to w, followed by a newline when indenting.
func WriteValue(w io.Writer, v Value, indent string) error {
	b, err := MarshalValue(v, indent)
	if err != nil {
		return err
	}
	if indent != "" {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	return err
}

func appendJSON(dst []byte, v Value, indent string, depth int) ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return nil, errAbsentValue
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		return strconv.AppendBool(dst, v.boolean), nil
	case KindNumber:
		return append(dst, v.text...), nil
	case KindString:
		return appendString(dst, v.text)
	case KindSequence:
		if len(v.items) == 0 {
			return append(dst, "[]"...), nil
		}
		dst = append(dst, '[')
		for i, it := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewline(dst, indent, depth+1)
			var err error
			if dst, err = appendJSON(dst, it, indent, depth+1); err != nil {
				return nil, err
			}
		}
		dst = appendNewline(dst, indent, depth)
		return append(dst, ']'), nil
	case KindMapping:
		dst = append(dst, '{')
		n := 0
		for _, m := range v.members {
			if m.Value.kind == KindAbsent {
				continue
			}
			if n > 0 {
				dst = append(dst, ',')
			}
			n++
			dst = appendNewline(dst, indent, depth+1)
			var err error
			if dst, err = appendString(dst, m.Key); err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			if indent != "" {
				dst = append(dst, ' ')
			}
			if dst, err = appendJSON(dst, m.Value, indent, depth+1); err != nil {
				return nil, err
			}
		}
		if n > 0 {
			dst = appendNewline(dst, indent, depth)
		}
		return append(dst, '}'), nil
	}
	return nil, errors.New("skema: unknown value kind " + v.kind.String())
}

func appendString(dst []byte, s string) ([]byte, error) {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

func appendNewline(dst []byte, indent string, depth int) []byte {
	if indent == "" {
		return dst
	}
	dst = append(dst, '\n')
	return append(dst, strings.Repeat(indent, depth)...)
}

// formatFloat mirrors encoding/json: plain notation inside [1e-6, 1e21),
// exponent notation outside with a trimmed exponent.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b := strconv.AppendFloat(nil, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}
