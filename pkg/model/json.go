package model

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serializes a primitive as its kind discriminator only,
// e.g. {"type":"number"}.
func (p Primitive) MarshalJSON() ([]byte, error) {
	payload := struct {
		Type string `json:"type"`
	}{Type: string(p.Primitive)}
	return json.Marshal(payload)
}

func (e Enum) MarshalJSON() ([]byte, error) {
	values := e.Values
	if values == nil {
		values = []string{}
	}
	payload := struct {
		Type   string   `json:"type"`
		Values []string `json:"values"`
	}{Type: "enum", Values: values}
	return json.Marshal(payload)
}

func (a Array) MarshalJSON() ([]byte, error) {
	items := a.Items
	if items == nil {
		items = []Parameter{}
	}
	payload := struct {
		Type  string      `json:"type"`
		Items []Parameter `json:"items"`
	}{Type: "array", Items: items}
	return json.Marshal(payload)
}

// MarshalJSON writes properties as a JSON object keyed by property name,
// preserving declaration order. encoding/json maps would reorder keys.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"object","properties":{`)
	for i, prop := range o.Properties {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(prop)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}
