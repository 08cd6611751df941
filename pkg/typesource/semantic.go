package typesource

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/parser"
)

// Resolved is the semantic view of one occurrence: the rendered type text
// plus the backing declaration when the text names one in the file.
type Resolved struct {
	Text string
	Decl *TypeDecl
}

// Resolver answers semantic queries against one parsed file. Without a full
// type checker the rendered text comes from the written annotation when one
// exists and from initializer widening otherwise; both feed the same
// declaration lookup.
type Resolver struct {
	file    *parser.File
	symbols *SymbolTable
}

// NewResolver builds a resolver and the file's symbol table.
func NewResolver(file *parser.File) *Resolver {
	return &Resolver{file: file, symbols: CollectSymbols(file)}
}

// Symbols returns the file's symbol table.
func (r *Resolver) Symbols() *SymbolTable {
	if r == nil {
		return nil
	}
	return r.symbols
}

// Resolve renders the type of an occurrence given its optional annotation
// type node and optional initializer expression. It never fails; occurrences
// with neither node resolve to "any".
func (r *Resolver) Resolve(typeNode, value *sitter.Node) Resolved {
	switch {
	case typeNode != nil:
		return r.ResolveText(parser.Text(typeNode, r.source()))
	case value != nil:
		return r.ResolveText(r.renderInitializerType(value))
	}
	return r.ResolveText("any")
}

// ResolveText resolves an occurrence known only by its rendered text, such
// as a member type inside another type expression.
func (r *Resolver) ResolveText(text string) Resolved {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "any"
	}
	resolved := Resolved{Text: text}
	if decl, ok := r.symbols.Lookup(text); ok {
		resolved.Decl = decl
	}
	return resolved
}

func (r *Resolver) source() []byte {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Source
}

// renderInitializerType widens an initializer expression to a type text the
// way documentation consumers expect: literals widen to their primitive,
// arrays render from their first element, object literals render one level
// of members, functions render an arrow signature. Anything opaque renders
// as "any".
func (r *Resolver) renderInitializerType(value *sitter.Node) string {
	if value == nil {
		return "any"
	}
	switch value.Kind() {
	case "number":
		return "number"
	case "string", "template_string":
		return "string"
	case "true", "false":
		return "boolean"
	case "null":
		return "null"
	case "undefined":
		return "undefined"
	case "new_expression":
		name := parser.Text(value.ChildByFieldName("constructor"), r.source())
		if name == "" {
			return "any"
		}
		return name
	case "array":
		elements := parser.NamedChildren(value)
		if len(elements) == 0 {
			return "never[]"
		}
		return r.renderInitializerType(elements[0]) + "[]"
	case "object":
		return r.renderObjectLiteralType(value)
	case "arrow_function", "function_expression":
		return r.renderCallableType(value)
	case "as_expression", "satisfies_expression":
		children := parser.NamedChildren(value)
		if len(children) == 2 {
			return strings.TrimSpace(parser.Text(children[1], r.source()))
		}
		return "any"
	case "parenthesized_expression":
		children := parser.NamedChildren(value)
		if len(children) == 1 {
			return r.renderInitializerType(children[0])
		}
		return "any"
	case "unary_expression":
		if argument := value.ChildByFieldName("argument"); argument != nil && argument.Kind() == "number" {
			return "number"
		}
		return "any"
	}
	return "any"
}

func (r *Resolver) renderObjectLiteralType(object *sitter.Node) string {
	var fields []string
	for _, child := range parser.NamedChildren(object) {
		switch child.Kind() {
		case "pair":
			key := parser.Text(child.ChildByFieldName("key"), r.source())
			fields = append(fields, key+": "+r.renderInitializerType(child.ChildByFieldName("value")))
		case "shorthand_property_identifier":
			fields = append(fields, parser.Text(child, r.source())+": any")
		}
	}
	if len(fields) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(fields, "; ") + " }"
}

// renderCallableType renders a function initializer as an arrow signature.
// Unannotated returns render as void; body inference is out of scope here.
func (r *Resolver) renderCallableType(fn *sitter.Node) string {
	paramsText := "()"
	if params := fn.ChildByFieldName("parameters"); params != nil {
		paramsText = parser.Text(params, r.source())
	} else if param := fn.ChildByFieldName("parameter"); param != nil {
		paramsText = "(" + parser.Text(param, r.source()) + ")"
	}
	returnText := "void"
	if annotation := fn.ChildByFieldName("return_type"); annotation != nil {
		if typeNode := parser.AnnotationType(annotation); typeNode != nil {
			returnText = parser.Text(typeNode, r.source())
		}
	}
	return paramsText + " => " + returnText
}
