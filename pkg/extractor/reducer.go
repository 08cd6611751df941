package extractor

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/model"
	"tsurface/extractor-go/pkg/parser"
	"tsurface/extractor-go/pkg/typesource"
)

// reducer collapses type occurrences into the four canonical shapes. The
// syntactic tier pattern-matches the written annotation; the semantic tier
// works from rendered type text and the file's declared types. Reduction is
// total: every occurrence yields a shape, with Primitive{string} as the
// final fallback.
type reducer struct {
	file     *parser.File
	resolver *typesource.Resolver
}

func newReducer(file *parser.File) *reducer {
	return &reducer{file: file, resolver: typesource.NewResolver(file)}
}

// reduceOccurrence reduces one parameter-level occurrence, given its
// optional annotation type node and optional initializer.
func (r *reducer) reduceOccurrence(typeNode, value *sitter.Node) model.Shape {
	if typeNode != nil {
		if shape, ok := r.syntactic(typesource.FromNode(typeNode, r.file.Source)); ok {
			return shape
		}
	}
	return r.semantic(r.resolver.Resolve(typeNode, value))
}

// reduceType reduces a nested type expression, such as an array element or
// an object member annotation.
func (r *reducer) reduceType(t typesource.Type) model.Shape {
	if t != nil {
		if shape, ok := r.syntactic(t); ok {
			return shape
		}
	}
	text := ""
	if t != nil {
		text = t.Render()
	}
	return r.semantic(r.resolver.ResolveText(text))
}

// syntactic reduces a written annotation. The second result is false when
// the annotation alone cannot decide (named references other than Date,
// generics other than Array<T>, function types, tuples, intersections).
func (r *reducer) syntactic(t typesource.Type) (model.Shape, bool) {
	switch t := t.(type) {
	case typesource.Keyword:
		switch t.Name {
		case "string":
			return model.Primitive{Primitive: model.PrimitiveString}, true
		case "number":
			return model.Primitive{Primitive: model.PrimitiveNumber}, true
		case "boolean":
			return model.Primitive{Primitive: model.PrimitiveBoolean}, true
		}
	case typesource.Named:
		if t.Name == "Date" {
			return model.Primitive{Primitive: model.PrimitiveDate}, true
		}
	case typesource.Generic:
		if t.Name == "Array" && len(t.Args) == 1 {
			return model.ArrayOf(r.reduceType(t.Args[0])), true
		}
	case typesource.ArrayOf:
		return model.ArrayOf(r.reduceType(t.Element)), true
	case typesource.Union:
		return r.reduceUnion(t)
	case typesource.ObjectLit:
		return r.objectShape(t.Members, true), true
	}
	return nil, false
}

// reduceUnion returns an enum when every member is a string literal,
// preserving declaration order without deduplication. Mixed unions reduce
// to their first member alone; the remaining members are discarded.
func (r *reducer) reduceUnion(union typesource.Union) (model.Shape, bool) {
	if len(union.Members) == 0 {
		return nil, false
	}
	values := make([]string, 0, len(union.Members))
	allStrings := true
	for _, member := range union.Members {
		literal, ok := member.(typesource.Literal)
		if !ok || !literal.IsString {
			allStrings = false
			break
		}
		values = append(values, stripQuotes(literal.Value))
	}
	if allStrings {
		return model.Enum{Values: values}, true
	}
	return r.reduceType(union.Members[0]), true
}

// semantic reduces from the rendered text of the resolved type. Array-ish
// text wins first, then primitive substring matches, then a backing
// structural declaration, then brace-ish text as an empty object.
//
// The substring matches are case-insensitive and deliberately loose: a type
// named MyNumberWrapper classifies as number. Consumers depend on this, so
// it is kept as a documented limitation rather than tightened.
func (r *reducer) semantic(resolved typesource.Resolved) model.Shape {
	text := resolved.Text
	if strings.Contains(text, "[]") || strings.HasPrefix(text, "Array") {
		// Element types are not recursively resolved at this tier.
		return model.ArrayOf(model.Primitive{Primitive: model.PrimitiveString})
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "string"):
		return model.Primitive{Primitive: model.PrimitiveString}
	case strings.Contains(lower, "number"):
		return model.Primitive{Primitive: model.PrimitiveNumber}
	case strings.Contains(lower, "boolean"):
		return model.Primitive{Primitive: model.PrimitiveBoolean}
	case strings.Contains(lower, "date"):
		return model.Primitive{Primitive: model.PrimitiveDate}
	}
	if resolved.Decl.Structural() {
		return r.objectShape(resolved.Decl.Members, false)
	}
	if strings.Contains(text, "{") || strings.Contains(lower, "interface") {
		return model.Object{Properties: []model.Parameter{}}
	}
	return model.Primitive{Primitive: model.PrimitiveString}
}

// objectShape builds an object from structural members in declaration
// order. Non-property members (methods, index and call signatures) are
// skipped. With deep set, member annotations go through full reduction and
// may chase named references; declaration members found by the semantic
// tier stay one level deep instead, reducing syntactically only.
func (r *reducer) objectShape(members []typesource.Member, deep bool) model.Object {
	properties := []model.Parameter{}
	for _, member := range members {
		if !member.IsProperty {
			continue
		}
		properties = append(properties, model.Parameter{
			Name:     member.Name,
			Type:     r.memberShape(member, deep),
			Required: !member.Optional,
		})
	}
	return model.Object{Properties: properties}
}

func (r *reducer) memberShape(member typesource.Member, deep bool) model.Shape {
	if member.Type == nil {
		return model.Primitive{Primitive: model.PrimitiveString}
	}
	if deep {
		return r.reduceType(member.Type)
	}
	if shape, ok := r.syntactic(member.Type); ok {
		return shape
	}
	return model.Primitive{Primitive: model.PrimitiveString}
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'' || first == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
