// Package model defines the serializable records produced by a signature
// extraction pass: the four-variant Shape union used for parameter types,
// the Parameter/FunctionInfo/ConstantInfo records built from declarations,
// and the Surface pair returned per file. All values are constructed once
// during a pass and never mutated afterwards; the JSON form is stable and
// preserves declaration order for enum values and object properties.
package model

// Shape is one of the four canonical type shapes. The reducer collapses
// every source type expression into exactly one of Primitive, Enum, Object,
// or Array.
type Shape interface {
	Kind() string
}

type PrimitiveKind string

const (
	PrimitiveString  PrimitiveKind = "string"
	PrimitiveNumber  PrimitiveKind = "number"
	PrimitiveBoolean PrimitiveKind = "boolean"
	PrimitiveDate    PrimitiveKind = "date"
)

// Primitive is a leaf shape covering string, number, boolean, and date.
type Primitive struct {
	Primitive PrimitiveKind
}

func (p Primitive) Kind() string { return string(p.Primitive) }

// Enum is a closed set of string alternatives in declaration order.
// Duplicate values are kept as written.
type Enum struct {
	Values []string
}

func (e Enum) Kind() string { return "enum" }

// Object carries named properties in declaration order. Property names are
// unique within one Object.
type Object struct {
	Properties []Parameter
}

func (o Object) Kind() string { return "object" }

// Property returns the named property and whether it exists.
func (o Object) Property(name string) (Parameter, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Array wraps exactly one synthetic element parameter named "item".
type Array struct {
	Items []Parameter
}

func (a Array) Kind() string { return "array" }

// ArrayItemName is the fixed name of the synthetic element parameter.
const ArrayItemName = "item"

// ArrayOf builds the canonical single-element Array for the given shape.
func ArrayOf(element Shape) Array {
	return Array{Items: []Parameter{{
		Name:     ArrayItemName,
		Type:     element,
		Required: true,
	}}}
}
