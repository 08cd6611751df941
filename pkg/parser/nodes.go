package parser

import sitter "github.com/tree-sitter/go-tree-sitter"

// Text returns the node's source text, or "" for a nil node.
func Text(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(source)
}

// ChildByKind returns the first named child with the given kind.
func ChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Kind() == kind {
			return child
		}
	}
	return nil
}

// NamedChildren collects the node's named children in order, skipping
// interleaved comments.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	children := make([]*sitter.Node, 0, node.NamedChildCount())
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Kind() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

// HasChildOfKind reports whether any direct child, named or anonymous, has
// the given kind. Optional markers ("?") and declaration keywords are
// anonymous children.
func HasChildOfKind(node *sitter.Node, kind string) bool {
	if node == nil {
		return false
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == kind {
			return true
		}
	}
	return false
}

// AnnotationType returns the type expression wrapped by a type_annotation
// node (the child after the ":" token).
func AnnotationType(annotation *sitter.Node) *sitter.Node {
	if annotation == nil {
		return nil
	}
	for i := uint(0); i < annotation.NamedChildCount(); i++ {
		child := annotation.NamedChild(i)
		if child == nil || child.Kind() == "comment" {
			continue
		}
		return child
	}
	return nil
}
