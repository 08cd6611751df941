package typesource

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/parser"
)

// DeclKind identifies what kind of declaration introduced a type name.
type DeclKind string

const (
	DeclInterface DeclKind = "interface"
	DeclAlias     DeclKind = "alias"
	DeclEnum      DeclKind = "enum"
)

// TypeDecl is a named type declaration found in the file. Members is
// populated for structural declarations (interfaces and object-type
// aliases) and nil otherwise.
type TypeDecl struct {
	Name    string
	Kind    DeclKind
	Members []Member
}

// Structural reports whether the declaration describes an object shape
// whose members can be enumerated. Empty interfaces count; aliases to
// non-object types and enums do not.
func (d *TypeDecl) Structural() bool {
	return d != nil && d.Members != nil
}

// SymbolTable indexes one file's top-level type declarations by name.
type SymbolTable struct {
	decls map[string]*TypeDecl
	order []string
}

// CollectSymbols scans the file's top-level declarations, looking through
// export and ambient wrappers. A later declaration of the same name
// replaces the earlier one.
func CollectSymbols(file *parser.File) *SymbolTable {
	table := &SymbolTable{decls: make(map[string]*TypeDecl)}
	if file == nil {
		return table
	}
	for _, top := range parser.NamedChildren(file.Root()) {
		decl := DeclarationOf(top)
		if decl == nil {
			continue
		}
		switch decl.Kind() {
		case "interface_declaration":
			table.put(&TypeDecl{
				Name:    parser.Text(decl.ChildByFieldName("name"), file.Source),
				Kind:    DeclInterface,
				Members: objectMembers(decl.ChildByFieldName("body"), file.Source),
			})
		case "type_alias_declaration":
			entry := &TypeDecl{
				Name: parser.Text(decl.ChildByFieldName("name"), file.Source),
				Kind: DeclAlias,
			}
			if value := decl.ChildByFieldName("value"); value != nil && value.Kind() == "object_type" {
				entry.Members = objectMembers(value, file.Source)
			}
			table.put(entry)
		case "enum_declaration":
			table.put(&TypeDecl{
				Name: parser.Text(decl.ChildByFieldName("name"), file.Source),
				Kind: DeclEnum,
			})
		}
	}
	return table
}

func (t *SymbolTable) put(decl *TypeDecl) {
	if decl == nil || decl.Name == "" {
		return
	}
	if _, exists := t.decls[decl.Name]; !exists {
		t.order = append(t.order, decl.Name)
	}
	t.decls[decl.Name] = decl
}

// Lookup returns the declaration registered under name.
func (t *SymbolTable) Lookup(name string) (*TypeDecl, bool) {
	if t == nil {
		return nil, false
	}
	decl, ok := t.decls[name]
	return decl, ok
}

// Names returns the declared type names in declaration order.
func (t *SymbolTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// DeclarationOf unwraps export and ambient wrappers around a top-level
// node, returning the inner declaration. Export statements without a
// declaration (re-exports, default-exported expressions) yield nil.
func DeclarationOf(node *sitter.Node) *sitter.Node {
	for node != nil {
		switch node.Kind() {
		case "export_statement":
			node = node.ChildByFieldName("declaration")
		case "ambient_declaration":
			children := parser.NamedChildren(node)
			if len(children) == 0 {
				return nil
			}
			node = children[0]
		default:
			return node
		}
	}
	return nil
}
