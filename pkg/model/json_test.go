package model

import (
	"encoding/json"
	"testing"
)

func marshalShape(t *testing.T, shape Shape) string {
	t.Helper()
	data, err := json.Marshal(shape)
	if err != nil {
		t.Fatalf("marshal %T: %v", shape, err)
	}
	return string(data)
}

func TestPrimitiveJSON(t *testing.T) {
	cases := []struct {
		kind PrimitiveKind
		want string
	}{
		{PrimitiveString, `{"type":"string"}`},
		{PrimitiveNumber, `{"type":"number"}`},
		{PrimitiveBoolean, `{"type":"boolean"}`},
		{PrimitiveDate, `{"type":"date"}`},
	}
	for _, tc := range cases {
		got := marshalShape(t, Primitive{Primitive: tc.kind})
		if got != tc.want {
			t.Fatalf("primitive %s: expected %s, got %s", tc.kind, tc.want, got)
		}
	}
}

func TestEnumJSONKeepsOrderAndDuplicates(t *testing.T) {
	enum := Enum{Values: []string{"active", "inactive", "pending", "active"}}
	got := marshalShape(t, enum)
	want := `{"type":"enum","values":["active","inactive","pending","active"]}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestEmptyEnumJSON(t *testing.T) {
	got := marshalShape(t, Enum{})
	want := `{"type":"enum","values":[]}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestObjectJSONPreservesPropertyOrder(t *testing.T) {
	object := Object{Properties: []Parameter{
		{Name: "zebra", Type: Primitive{Primitive: PrimitiveString}, Required: true},
		{Name: "age", Type: Primitive{Primitive: PrimitiveNumber}, Required: true},
		{Name: "active", Type: Primitive{Primitive: PrimitiveBoolean}, Required: false},
	}}
	got := marshalShape(t, object)
	want := `{"type":"object","properties":{` +
		`"zebra":{"name":"zebra","type":{"type":"string"},"description":"","required":true,"defaultValue":""},` +
		`"age":{"name":"age","type":{"type":"number"},"description":"","required":true,"defaultValue":""},` +
		`"active":{"name":"active","type":{"type":"boolean"},"description":"","required":false,"defaultValue":""}}}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestEmptyObjectJSON(t *testing.T) {
	got := marshalShape(t, Object{})
	want := `{"type":"object","properties":{}}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestArrayOfJSON(t *testing.T) {
	shape := ArrayOf(Primitive{Primitive: PrimitiveNumber})
	got := marshalShape(t, shape)
	want := `{"type":"array","items":[` +
		`{"name":"item","type":{"type":"number"},"description":"","required":true,"defaultValue":""}]}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNestedArrayObjectJSON(t *testing.T) {
	inner := Object{Properties: []Parameter{
		{Name: "id", Type: Primitive{Primitive: PrimitiveNumber}, Required: true},
		{Name: "tags", Type: ArrayOf(Primitive{Primitive: PrimitiveString}), Required: true},
	}}
	data, err := json.Marshal(ArrayOf(inner))
	if err != nil {
		t.Fatalf("marshal nested array: %v", err)
	}
	var decoded struct {
		Type  string `json:"type"`
		Items []struct {
			Name string `json:"name"`
			Type struct {
				Type       string          `json:"type"`
				Properties json.RawMessage `json:"properties"`
			} `json:"type"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode nested array: %v", err)
	}
	if decoded.Type != "array" || len(decoded.Items) != 1 {
		t.Fatalf("expected single-item array, got %s", data)
	}
	if decoded.Items[0].Name != ArrayItemName {
		t.Fatalf("expected item name %q, got %q", ArrayItemName, decoded.Items[0].Name)
	}
	if decoded.Items[0].Type.Type != "object" {
		t.Fatalf("expected object element, got %q", decoded.Items[0].Type.Type)
	}
}

func TestFunctionInfoJSONOmitsEmptyReturnType(t *testing.T) {
	fn := FunctionInfo{Name: "greet", Parameters: []Parameter{}}
	data, err := json.Marshal(fn)
	if err != nil {
		t.Fatalf("marshal function: %v", err)
	}
	want := `{"name":"greet","parameters":[],"description":""}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}

	fn.ReturnType = "Promise<void>"
	data, err = json.Marshal(fn)
	if err != nil {
		t.Fatalf("marshal function: %v", err)
	}
	var decoded struct {
		ReturnType string `json:"returnType"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode function: %v", err)
	}
	if decoded.ReturnType != "Promise<void>" {
		t.Fatalf("expected return type to survive encoding, got %q", decoded.ReturnType)
	}
}

func TestConstantInfoJSONOmitsEmptyValue(t *testing.T) {
	constant := ConstantInfo{Name: "MAX_RETRIES", Type: "number"}
	data, err := json.Marshal(constant)
	if err != nil {
		t.Fatalf("marshal constant: %v", err)
	}
	want := `{"name":"MAX_RETRIES","type":"number","description":""}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestObjectPropertyLookup(t *testing.T) {
	object := Object{Properties: []Parameter{
		{Name: "email", Type: Primitive{Primitive: PrimitiveString}, Required: false},
	}}
	prop, ok := object.Property("email")
	if !ok {
		t.Fatalf("expected email property")
	}
	if prop.Required {
		t.Fatalf("expected optional email property")
	}
	if _, ok := object.Property("missing"); ok {
		t.Fatalf("expected missing property lookup to fail")
	}
}
