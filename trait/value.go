package trait

import (
	"fmt"
	"strconv"
)

// Kind identifies the primitive type held by a Value.
type Kind uint8

const (
	// Invalid is the kind of the zero Value, meaning "absent".
	Invalid Kind = iota
	Bool
	Int
	Float
	String
)

// String returns the short type name used in error messages.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "str"
	default:
		return "invalid"
	}
}

// DefinitionName returns the name used for k in definition files.
func (k Kind) DefinitionName() string {
	switch k {
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return ""
	}
}

// ParseKind maps a definition-file type name onto a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "boolean":
		return Bool, nil
	case "integer":
		return Int, nil
	case "float":
		return Float, nil
	case "string":
		return String, nil
	}
	return Invalid, fmt.Errorf("unknown property type %q", name)
}

// Value is a tagged union over the primitive types a property container
// can hold. The zero Value is invalid and stands for an absent property.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// Kind returns the kind of the held value.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != Invalid }

// AsBool returns the held boolean. The bool result is false when v is not
// a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == Bool }

// AsInt returns the held integer. The bool result is false when v is not
// an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == Int }

// AsFloat returns the held float. The bool result is false when v is not
// a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == Float }

// AsString returns the held string. The bool result is false when v is
// not a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == String }

// ValueOf converts a Go primitive into a Value. Integer types map to Int,
// floating point types to Float. Anything else is rejected.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case bool:
		return BoolValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case int8:
		return IntValue(int64(t)), nil
	case int16:
		return IntValue(int64(t)), nil
	case int32:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case uint8:
		return IntValue(int64(t)), nil
	case uint16:
		return IntValue(int64(t)), nil
	case uint32:
		return IntValue(int64(t)), nil
	case float32:
		return FloatValue(float64(t)), nil
	case float64:
		return FloatValue(t), nil
	case string:
		return StringValue(t), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported property value %v [%T]", ErrTypeMismatch, x, x)
}

// Interface returns the held value as a Go primitive, or nil when invalid.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.b
	case Int:
		return v.i
	case Float:
		return v.f
	case String:
		return v.s
	}
	return nil
}

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String renders the raw value without quoting.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.b)
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	}
	return "<absent>"
}
