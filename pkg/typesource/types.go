// Package typesource exposes the two queries the shape reducer needs from a
// parsed file: a syntactic view of written type annotations as a closed
// union of expression variants, and a semantic view that renders an
// occurrence's resolved type and finds its backing declaration. The reducer
// depends only on these queries, so swapping the tree-sitter front-end for
// another parser means reimplementing this package and nothing else.
package typesource

// Type is the closed union of syntactic type expressions. Render returns
// the expression's source text as written.
type Type interface {
	Render() string
}

// Keyword is a predefined type keyword: string, number, boolean, any, void,
// and the rest of the grammar's predefined set.
type Keyword struct {
	Name string
}

func (k Keyword) Render() string { return k.Name }

// Named references a declared type by name, e.g. User or Date.
type Named struct {
	Name string
}

func (n Named) Render() string { return n.Name }

// Generic is a named type applied to arguments, e.g. Array<string>.
type Generic struct {
	Name string
	Args []Type
	Text string
}

func (g Generic) Render() string { return g.Text }

// ArrayOf is the postfix T[] form.
type ArrayOf struct {
	Element Type
	Text    string
}

func (a ArrayOf) Render() string { return a.Text }

// Union is A | B | C with members flattened in declaration order.
type Union struct {
	Members []Type
	Text    string
}

func (u Union) Render() string { return u.Text }

// Literal is a literal type member. Value keeps the source text, quotes
// included for string literals.
type Literal struct {
	Value    string
	IsString bool
}

func (l Literal) Render() string { return l.Value }

// ObjectLit is an inline structural object type written at the point of use.
type ObjectLit struct {
	Members []Member
	Text    string
}

func (o ObjectLit) Render() string { return o.Text }

// Member is one member of an object type, interface body, or structural
// alias. Type is nil when the member carries no annotation. IsProperty is
// false for methods, index signatures, and other non-property members.
type Member struct {
	Name       string
	Type       Type
	Optional   bool
	IsProperty bool
}

// Unsupported covers the syntactic forms the reducer does not model:
// function types, tuples, intersections, conditional and mapped types.
type Unsupported struct {
	Kind string
	Text string
}

func (u Unsupported) Render() string { return u.Text }
