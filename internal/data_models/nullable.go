package dto

import (
	"bytes"
	"encoding/json"
)

// NullableString tells apart a JSON field that is absent, explicitly null,
// or set to a string value.
type NullableString struct {
	Set   bool
	Null  bool
	Value string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Null = true
		n.Value = ""
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Column is the value to store for a set field: nil for null, the string
// otherwise.
func (n NullableString) Column() interface{} {
	if n.Null {
		return nil
	}
	return n.Value
}

func Null() NullableString {
	return NullableString{Set: true, Null: true}
}

func Some(value string) NullableString {
	return NullableString{Set: true, Value: value}
}
