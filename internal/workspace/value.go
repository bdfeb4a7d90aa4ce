package workspace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Kind identifies the shape held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a decoded extension attribute. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
	arr  []Value
	obj  map[string]Value
}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue returns a number Value.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue returns a bool Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

// ArrayValue returns an array Value.
func ArrayValue(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// ObjectValue returns an object Value.
func ObjectValue(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string held by v.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Number returns the number held by v.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the bool held by v.
func (v Value) Bool() (bool, bool) { return v.flag, v.kind == KindBool }

// Array returns the items held by v.
func (v Value) Array() ([]Value, bool) { return v.arr, v.kind == KindArray }

// Object returns the fields held by v.
func (v Value) Object() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// Interface converts v back to plain Go values as produced by encoding/json.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = valueOf(raw)
	return nil
}

func valueOf(raw any) Value {
	switch t := raw.(type) {
	case string:
		return StringValue(t)
	case float64:
		return NumberValue(t)
	case bool:
		return BoolValue(t)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = valueOf(item)
		}
		return ArrayValue(items...)
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			fields[k] = valueOf(item)
		}
		return ObjectValue(fields)
	default:
		return Value{}
	}
}

// Extensions holds the open-ended attributes of a project.
type Extensions map[string]Value

// ProjectTypeKey is the extension key that declares the project kind.
const ProjectTypeKey = "projectType"

// Get returns the attribute stored under key.
func (e Extensions) Get(key string) (Value, bool) {
	v, ok := e[key]
	return v, ok
}

// String returns the attribute under key when it is a string.
func (e Extensions) String(key string) string {
	s, _ := e[key].Str()
	return s
}

// ProjectType returns the declared project kind, or "" when absent or not a string.
func (e Extensions) ProjectType() string {
	return e.String(ProjectTypeKey)
}

// Keys returns the attribute names in sorted order.
func (e Extensions) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}
