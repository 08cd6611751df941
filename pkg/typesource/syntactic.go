package typesource

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/parser"
)

// FromAnnotation converts the type expression inside a type_annotation
// node. The second result is false when no annotation is present.
func FromAnnotation(annotation *sitter.Node, source []byte) (Type, bool) {
	node := parser.AnnotationType(annotation)
	if node == nil {
		return nil, false
	}
	return FromNode(node, source), true
}

// FromNode converts a type expression node into the closed union.
func FromNode(node *sitter.Node, source []byte) Type {
	if node == nil {
		return Unsupported{}
	}
	text := parser.Text(node, source)
	switch node.Kind() {
	case "predefined_type":
		return Keyword{Name: text}
	case "type_identifier", "nested_type_identifier":
		return Named{Name: text}
	case "generic_type":
		name := parser.Text(node.ChildByFieldName("name"), source)
		var args []Type
		if typeArgs := node.ChildByFieldName("type_arguments"); typeArgs != nil {
			for _, child := range parser.NamedChildren(typeArgs) {
				args = append(args, FromNode(child, source))
			}
		}
		return Generic{Name: name, Args: args, Text: text}
	case "array_type":
		var element Type
		if children := parser.NamedChildren(node); len(children) > 0 {
			element = FromNode(children[0], source)
		}
		return ArrayOf{Element: element, Text: text}
	case "union_type":
		return Union{Members: flattenUnion(node, source), Text: text}
	case "literal_type":
		isString := false
		if children := parser.NamedChildren(node); len(children) > 0 {
			isString = children[0].Kind() == "string"
		}
		return Literal{Value: text, IsString: isString}
	case "object_type":
		return ObjectLit{Members: objectMembers(node, source), Text: text}
	}
	return Unsupported{Kind: node.Kind(), Text: text}
}

// flattenUnion collects union members in declaration order. tree-sitter
// nests A | B | C as (A | B) | C.
func flattenUnion(node *sitter.Node, source []byte) []Type {
	var members []Type
	for _, child := range parser.NamedChildren(node) {
		if child.Kind() == "union_type" {
			members = append(members, flattenUnion(child, source)...)
			continue
		}
		members = append(members, FromNode(child, source))
	}
	return members
}

// objectMembers reads the members of an object_type or interface body in
// declaration order.
func objectMembers(body *sitter.Node, source []byte) []Member {
	if body == nil {
		return nil
	}
	members := []Member{}
	for _, child := range parser.NamedChildren(body) {
		switch child.Kind() {
		case "property_signature":
			member := Member{
				Name:       parser.Text(child.ChildByFieldName("name"), source),
				Optional:   parser.HasChildOfKind(child, "?"),
				IsProperty: true,
			}
			if t, ok := FromAnnotation(child.ChildByFieldName("type"), source); ok {
				member.Type = t
			}
			members = append(members, member)
		case "method_signature", "index_signature", "call_signature", "construct_signature":
			members = append(members, Member{
				Name:       parser.Text(child.ChildByFieldName("name"), source),
				IsProperty: false,
			})
		}
	}
	return members
}
