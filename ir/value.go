package ir

import "encoding/json"

// Value is a plain JSON-equivalent value as it appears in entity component
// data and constants.  Values serialize untagged: each variant marshals
// directly to its JSON counterpart.
type Value interface {
	value()
}

// NullValue is the explicit null value.  Null is value-level only: absent
// optional fields are omitted from the JSON, never emitted as null.
type NullValue struct{}

func (NullValue) value() {}

func (NullValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// BoolValue is a boolean value.
type BoolValue bool

func (BoolValue) value() {}

func (v BoolValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(v))
}

// NumberValue is a numeric value.  Integers, floats, and decimals all
// collapse to one number representation on the wire.
type NumberValue float64

func (NumberValue) value() {}

func (v NumberValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(v))
}

// StringValue is a string value.
type StringValue string

func (StringValue) value() {}

func (v StringValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// ListValue is a list of values.
type ListValue []Value

func (ListValue) value() {}

func (v ListValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Value(v))
}

// ObjectValue is a string-keyed value map preserving insertion order.
type ObjectValue struct {
	Fields *OrderedMap[Value]
}

func (*ObjectValue) value() {}

func (v *ObjectValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Fields)
}
