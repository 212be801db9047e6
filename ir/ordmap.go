package ir

import (
	"bytes"
	"encoding/json"
)

// OrderedMap is a string-keyed map that preserves insertion order, both for
// iteration and for JSON serialization.  The IR contract requires that field
// and component maps serialize in source order.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set binds a key, appending it to the key order if it is new.
func (om *OrderedMap[V]) Set(key string, value V) {
	if _, ok := om.values[key]; !ok {
		om.keys = append(om.keys, key)
	}

	om.values[key] = value
}

// Get looks up a key.
func (om *OrderedMap[V]) Get(key string) (V, bool) {
	value, ok := om.values[key]
	return value, ok
}

// Len returns the number of entries.
func (om *OrderedMap[V]) Len() int {
	return len(om.keys)
}

// Keys returns the keys in insertion order.  The returned slice is shared;
// callers must not mutate it.
func (om *OrderedMap[V]) Keys() []string {
	return om.keys
}

// MarshalJSON serializes the map as a JSON object with keys in insertion
// order.
func (om *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range om.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')

		valueJSON, err := json.Marshal(om.values[key])
		if err != nil {
			return nil, err
		}

		buf.Write(valueJSON)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
