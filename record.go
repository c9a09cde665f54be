package skema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	eng "github.com/reoring/skema/internal/engine"
)

// Record is a decoded object keyed by internal names. Values are nil, bool,
// float64 (or json.Number under NumberJSONNumber), string, []any or Record.
type Record = map[string]any

// ToRecord converts a Mapping value into a Record. Absent members are
// omitted.
func ToRecord(v Value, mode NumberMode) (Record, error) {
	if v.kind != KindMapping {
		return nil, fmt.Errorf("skema: expected a mapping, got %s", v.kind)
	}
	out, err := toNative(v, mode)
	if err != nil {
		return nil, err
	}
	return out.(Record), nil
}

func toNative(v Value, mode NumberMode) (any, error) {
	switch v.kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return v.boolean, nil
	case KindString:
		return v.text, nil
	case KindNumber:
		if mode == NumberJSONNumber {
			return json.Number(v.text), nil
		}
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return nil, fmt.Errorf("skema: number %q: %w", v.text, err)
		}
		return f, nil
	case KindSequence:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			n, err := toNative(it, mode)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case KindMapping:
		out := make(Record, len(v.members))
		for _, m := range v.members {
			if m.Value.kind == KindAbsent {
				continue
			}
			n, err := toNative(m.Value, mode)
			if err != nil {
				return nil, err
			}
			out[m.Key] = n
		}
		return out, nil
	}
	return nil, fmt.Errorf("skema: cannot convert %s value", v.kind)
}

// FromNative converts a Go value into a Value. Maps are ordered by sorted key.
// Structs use their json tag names (see ResolveStructKey); nil pointers and
// omitempty zero values become absent members.
func FromNative(x any) (Value, error) {
	return fromNative(x, "")
}

func fromNative(x any, path string) (Value, error) {
	switch t := x.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return t, nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		if _, err := strconv.ParseFloat(string(t), 64); err != nil {
			return Value{}, nativeViolation(path, fmt.Errorf("invalid number literal %q", t))
		}
		return NumberValue(string(t)), nil
	case float64:
		return floatValue(t, path)
	case float32:
		return floatValue(float64(t), path)
	case int:
		return NumberValue(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return NumberValue(strconv.FormatInt(t, 10)), nil
	case int32:
		return NumberValue(strconv.FormatInt(int64(t), 10)), nil
	case uint:
		return NumberValue(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return NumberValue(strconv.FormatUint(t, 10)), nil
	case []any:
		items := make([]Value, len(t))
		for i, it := range t {
			v, err := fromNative(it, eng.JoinPointer(path, strconv.Itoa(i)))
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return SequenceValue(items...), nil
	case []string:
		items := make([]Value, len(t))
		for i, s := range t {
			items[i] = StringValue(s)
		}
		return SequenceValue(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			v, err := fromNative(t[k], eng.JoinPointer(path, k))
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k, Value: v})
		}
		return Value{kind: KindMapping, members: members}, nil
	}
	return fromReflect(reflect.ValueOf(x), path)
}

func floatValue(f float64, path string) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, nativeViolation(path, fmt.Errorf("unsupported number %v", f))
	}
	return FloatValue(f), nil
}

func fromReflect(rv reflect.Value, path string) (Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return NullValue(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NullValue(), nil
		}
		return fromNative(rv.Elem().Interface(), path)
	case reflect.Bool:
		return BoolValue(rv.Bool()), nil
	case reflect.String:
		return StringValue(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberValue(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NumberValue(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return floatValue(rv.Float(), path)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NullValue(), nil
		}
		items := make([]Value, rv.Len())
		for i := range items {
			v, err := fromNative(rv.Index(i).Interface(), eng.JoinPointer(path, strconv.Itoa(i)))
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return SequenceValue(items...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			v, err := fromNative(rv.MapIndex(k).Interface(), eng.JoinPointer(path, k.String()))
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k.String(), Value: v})
		}
		return Value{kind: KindMapping, members: members}, nil
	case reflect.Struct:
		return fromStruct(rv, path)
	}
	return Value{}, nativeViolation(path, fmt.Errorf("unsupported Go type %s", rv.Type()))
}

func fromStruct(rv reflect.Value, path string) (Value, error) {
	rt := rv.Type()
	members := make([]Member, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		fv := rv.Field(i)
		if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface) && fv.IsNil() {
			continue
		}
		if hasOmitEmpty(sf) && fv.IsZero() {
			continue
		}
		v, err := fromNative(fv.Interface(), eng.JoinPointer(path, key))
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: v})
	}
	return MappingValue(members...), nil
}

// ResolveStructKey resolves the mapping key of a struct field.
// Priority: skema:"name=..." > json tag name > field name; "-" skips the field.
func ResolveStructKey(sf reflect.StructField) string {
	if st := sf.Tag.Get("skema"); st != "" {
		for _, p := range strings.Split(st, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i == 0 {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

func hasOmitEmpty(sf reflect.StructField) bool {
	jt := sf.Tag.Get("json")
	i := strings.IndexByte(jt, ',')
	return i >= 0 && strings.Contains(jt[i:], "omitempty")
}

func nativeViolation(path string, cause error) *Violation {
	if path == "" {
		path = "/"
	}
	return &Violation{Code: CodeInvalidType, Path: path, Cause: cause}
}
