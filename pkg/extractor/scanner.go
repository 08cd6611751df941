package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/parser"
)

// scannedFunction is a function-like declaration: a named function
// declaration or signature, a variable bound to an arrow function, or an
// unnamed default-exported function expression.
type scannedFunction struct {
	name string       // "" when the declaration carries no identifier
	fn   *sitter.Node // node carrying the parameters and return_type fields
	decl *sitter.Node // anchor for documentation lookup
}

// scannedConstant is a top-level variable declaration whose initializer is
// not an arrow function. Variables without an initializer are excluded.
type scannedConstant struct {
	name  string
	decl  *sitter.Node
	typ   *sitter.Node // annotation type node, nil when unannotated
	value *sitter.Node
}

type scanResult struct {
	functions []scannedFunction
	constants []scannedConstant
}

// scan walks the file's top-level declarations in source order, looking
// through export and ambient wrappers.
func scan(file *parser.File) scanResult {
	var result scanResult
	for _, node := range parser.NamedChildren(file.Root()) {
		scanTopLevel(file, node, &result)
	}
	return result
}

func scanTopLevel(file *parser.File, node *sitter.Node, out *scanResult) {
	switch node.Kind() {
	case "export_statement":
		if decl := node.ChildByFieldName("declaration"); decl != nil {
			scanTopLevel(file, decl, out)
			return
		}
		// export default <expression>; only unnamed function expressions
		// declare anything. Arrows and other expressions bind no name and
		// are not variable declarations, so they are skipped.
		if value := node.ChildByFieldName("value"); value != nil {
			switch value.Kind() {
			case "function_expression", "generator_function":
				out.functions = append(out.functions, scannedFunction{fn: value, decl: value})
			}
		}
	case "ambient_declaration":
		for _, child := range parser.NamedChildren(node) {
			scanTopLevel(file, child, out)
		}
	case "function_declaration", "generator_function_declaration", "function_signature":
		name := ""
		if id := node.ChildByFieldName("name"); id != nil {
			name = file.Text(id)
		}
		out.functions = append(out.functions, scannedFunction{name: name, fn: node, decl: node})
	case "lexical_declaration", "variable_declaration":
		for _, declarator := range parser.NamedChildren(node) {
			if declarator.Kind() == "variable_declarator" {
				scanDeclarator(file, declarator, out)
			}
		}
	}
}

// scanDeclarator classifies one variable declarator. Only arrow function
// initializers make a variable function-like; a plain function expression
// stays a constant. Destructuring patterns bind no single name and are
// skipped.
func scanDeclarator(file *parser.File, declarator *sitter.Node, out *scanResult) {
	nameNode := declarator.ChildByFieldName("name")
	value := declarator.ChildByFieldName("value")
	if nameNode == nil || value == nil || nameNode.Kind() != "identifier" {
		return
	}
	name := file.Text(nameNode)
	if value.Kind() == "arrow_function" {
		out.functions = append(out.functions, scannedFunction{name: name, fn: value, decl: declarator})
		return
	}
	constant := scannedConstant{name: name, decl: declarator, value: value}
	if annotation := declarator.ChildByFieldName("type"); annotation != nil {
		constant.typ = parser.AnnotationType(annotation)
	}
	out.constants = append(out.constants, constant)
}

// parameterNodes returns a function's formal parameters in declaration
// order. Arrow functions without parentheses expose a single bare
// identifier instead of a parameter list. A this parameter is dropped; it
// is a typing artifact, not a callable argument.
func parameterNodes(fn *sitter.Node) []*sitter.Node {
	if params := fn.ChildByFieldName("parameters"); params != nil {
		var nodes []*sitter.Node
		for _, child := range parser.NamedChildren(params) {
			switch child.Kind() {
			case "required_parameter", "optional_parameter":
				if pattern := child.ChildByFieldName("pattern"); pattern != nil && pattern.Kind() == "this" {
					continue
				}
				nodes = append(nodes, child)
			}
		}
		return nodes
	}
	if single := fn.ChildByFieldName("parameter"); single != nil {
		return []*sitter.Node{single}
	}
	return nil
}
