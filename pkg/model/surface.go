package model

// Parameter describes one function parameter, object property, or array
// element after type reduction.
//
// Required is false iff the declaration carries an optional marker or a
// default initializer. DefaultValue is empty unless default capture is
// enabled and a written initializer exists; it holds the raw source text of
// the initializer, quotes included.
type Parameter struct {
	Name         string `json:"name"`
	Type         Shape  `json:"type"`
	Description  string `json:"description"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"defaultValue"`
}

// FunctionInfo describes one function-like declaration. Name is "anonymous"
// for unnamed function declarations. ReturnType holds the written return
// annotation text and is empty when the return type was not annotated.
type FunctionInfo struct {
	Name        string      `json:"name"`
	Parameters  []Parameter `json:"parameters"`
	ReturnType  string      `json:"returnType,omitempty"`
	Description string      `json:"description"`
}

// ConstantInfo describes one top-level variable declaration that is not
// function-like. Type keeps the raw rendered type text rather than a
// reduced Shape; Value keeps the raw source text of the initializer.
type ConstantInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description"`
}

// Surface is the result of extracting one source file.
type Surface struct {
	Functions []FunctionInfo `json:"functions"`
	Constants []ConstantInfo `json:"constants"`
}

// AnonymousFunctionName is the name assigned to unnamed function declarations.
const AnonymousFunctionName = "anonymous"
