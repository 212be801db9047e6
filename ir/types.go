package ir

import "encoding/json"

// Type is a wire-level type as it appears in the IR JSON.  Types serialize
// with a string tag: `{"type":"number"}`, `{"type":"list","element":...}`,
// and so on.
type Type interface {
	irType()
}

// NumberType is the single numeric wire type.
type NumberType struct{}

func (NumberType) irType() {}

func (NumberType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"number"})
}

// StringType is the string wire type.
type StringType struct{}

func (StringType) irType() {}

func (StringType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"string"})
}

// BooleanType is the boolean wire type.
type BooleanType struct{}

func (BooleanType) irType() {}

func (BooleanType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"boolean"})
}

// EntityType is the entity-reference wire type.  Component and composite
// semantic types both collapse to it.
type EntityType struct{}

func (EntityType) irType() {}

func (EntityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"entity"})
}

// ListType is the homogeneous-list wire type.
type ListType struct {
	Element Type `json:"element"`
}

func (*ListType) irType() {}

func (t *ListType) MarshalJSON() ([]byte, error) {
	type alias ListType
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"list", (*alias)(t)})
}

// MapType is the keyed-map wire type.  Nothing produces it today; it is part
// of the closed wire schema consumed by downstream engines.
type MapType struct {
	Key   Type `json:"key"`
	Value Type `json:"value"`
}

func (*MapType) irType() {}

func (t *MapType) MarshalJSON() ([]byte, error) {
	type alias MapType
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"map", (*alias)(t)})
}
