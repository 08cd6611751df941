package typesource

import (
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/parser"
)

func parseSource(t *testing.T, name, source string) *parser.File {
	t.Helper()
	p, err := parser.NewSourceParser()
	if err != nil {
		t.Fatalf("NewSourceParser error: %v", err)
	}
	t.Cleanup(p.Close)
	file, err := p.Parse([]byte(source), name)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return file
}

func findKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Kind() == kind {
		return node
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		if found := findKind(node.NamedChild(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func aliasValue(t *testing.T, file *parser.File) *sitter.Node {
	t.Helper()
	alias := findKind(file.Root(), "type_alias_declaration")
	if alias == nil {
		t.Fatalf("expected a type alias in fixture")
	}
	value := alias.ChildByFieldName("value")
	if value == nil {
		t.Fatalf("expected alias value node")
	}
	return value
}

func TestFromNodeKeyword(t *testing.T) {
	file := parseSource(t, "keyword.ts", "type A = string\n")
	typ := FromNode(aliasValue(t, file), file.Source)
	keyword, ok := typ.(Keyword)
	if !ok {
		t.Fatalf("expected Keyword, got %T", typ)
	}
	if keyword.Name != "string" {
		t.Fatalf("expected string keyword, got %q", keyword.Name)
	}
}

func TestFromNodeNamedReference(t *testing.T) {
	file := parseSource(t, "named.ts", "type A = UserProfile\n")
	typ := FromNode(aliasValue(t, file), file.Source)
	named, ok := typ.(Named)
	if !ok {
		t.Fatalf("expected Named, got %T", typ)
	}
	if named.Name != "UserProfile" {
		t.Fatalf("expected UserProfile, got %q", named.Name)
	}
}

func TestFromNodeArrayForms(t *testing.T) {
	file := parseSource(t, "arr.ts", "type A = number[]\n")
	typ := FromNode(aliasValue(t, file), file.Source)
	array, ok := typ.(ArrayOf)
	if !ok {
		t.Fatalf("expected ArrayOf, got %T", typ)
	}
	element, ok := array.Element.(Keyword)
	if !ok || element.Name != "number" {
		t.Fatalf("expected number element, got %#v", array.Element)
	}

	file = parseSource(t, "gen.ts", "type B = Array<string>\n")
	typ = FromNode(aliasValue(t, file), file.Source)
	generic, ok := typ.(Generic)
	if !ok {
		t.Fatalf("expected Generic, got %T", typ)
	}
	if generic.Name != "Array" || len(generic.Args) != 1 {
		t.Fatalf("expected single-argument Array, got %#v", generic)
	}
	if arg, ok := generic.Args[0].(Keyword); !ok || arg.Name != "string" {
		t.Fatalf("expected string argument, got %#v", generic.Args[0])
	}
}

func TestFromNodeUnionFlattensInOrder(t *testing.T) {
	file := parseSource(t, "union.ts", `type Status = "active" | "inactive" | "pending"
`)
	typ := FromNode(aliasValue(t, file), file.Source)
	union, ok := typ.(Union)
	if !ok {
		t.Fatalf("expected Union, got %T", typ)
	}
	if len(union.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(union.Members))
	}
	wantValues := []string{`"active"`, `"inactive"`, `"pending"`}
	for i, member := range union.Members {
		literal, ok := member.(Literal)
		if !ok {
			t.Fatalf("member %d: expected Literal, got %T", i, member)
		}
		if !literal.IsString || literal.Value != wantValues[i] {
			t.Fatalf("member %d: expected %s, got %#v", i, wantValues[i], literal)
		}
	}
}

func TestFromNodeMixedUnion(t *testing.T) {
	file := parseSource(t, "mixed.ts", `type Mixed = number | "fallback"
`)
	typ := FromNode(aliasValue(t, file), file.Source)
	union, ok := typ.(Union)
	if !ok {
		t.Fatalf("expected Union, got %T", typ)
	}
	if len(union.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(union.Members))
	}
	if _, ok := union.Members[0].(Keyword); !ok {
		t.Fatalf("expected keyword first member, got %T", union.Members[0])
	}
}

func TestFromNodeObjectLiteral(t *testing.T) {
	file := parseSource(t, "obj.ts", `type Payload = {
  name: string
  age?: number
  greet(): void
  tags
}
`)
	typ := FromNode(aliasValue(t, file), file.Source)
	object, ok := typ.(ObjectLit)
	if !ok {
		t.Fatalf("expected ObjectLit, got %T", typ)
	}
	if len(object.Members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(object.Members))
	}
	if object.Members[0].Name != "name" || object.Members[0].Optional || !object.Members[0].IsProperty {
		t.Fatalf("unexpected first member %#v", object.Members[0])
	}
	if object.Members[1].Name != "age" || !object.Members[1].Optional {
		t.Fatalf("expected optional age member, got %#v", object.Members[1])
	}
	if object.Members[2].IsProperty {
		t.Fatalf("expected method member to be non-property")
	}
	if object.Members[3].Type != nil {
		t.Fatalf("expected unannotated member to carry nil type")
	}
}

func TestFromNodeUnsupportedForms(t *testing.T) {
	file := parseSource(t, "unsupported.ts", "type F = (a: string) => void\n")
	typ := FromNode(aliasValue(t, file), file.Source)
	if _, ok := typ.(Unsupported); !ok {
		t.Fatalf("expected Unsupported for function type, got %T", typ)
	}

	file = parseSource(t, "tuple.ts", "type T = [string, number]\n")
	typ = FromNode(aliasValue(t, file), file.Source)
	if _, ok := typ.(Unsupported); !ok {
		t.Fatalf("expected Unsupported for tuple type, got %T", typ)
	}

	file = parseSource(t, "intersect.ts", "type I = A & B\n")
	typ = FromNode(aliasValue(t, file), file.Source)
	if _, ok := typ.(Unsupported); !ok {
		t.Fatalf("expected Unsupported for intersection type, got %T", typ)
	}
}

func TestCollectSymbols(t *testing.T) {
	file := parseSource(t, "symbols.ts", `export interface User {
  id: number
  email?: string
}

type Settings = {
  theme: string
}

type Status = "on" | "off"

export enum Color {
  Red,
  Green,
}
`)
	table := CollectSymbols(file)

	user, ok := table.Lookup("User")
	if !ok || user.Kind != DeclInterface {
		t.Fatalf("expected interface User, got %#v", user)
	}
	if len(user.Members) != 2 {
		t.Fatalf("expected 2 interface members, got %d", len(user.Members))
	}
	if !user.Members[1].Optional {
		t.Fatalf("expected optional email member")
	}

	settings, ok := table.Lookup("Settings")
	if !ok || settings.Kind != DeclAlias || len(settings.Members) != 1 {
		t.Fatalf("expected structural Settings alias, got %#v", settings)
	}

	status, ok := table.Lookup("Status")
	if !ok || status.Kind != DeclAlias || status.Members != nil {
		t.Fatalf("expected non-structural Status alias, got %#v", status)
	}

	color, ok := table.Lookup("Color")
	if !ok || color.Kind != DeclEnum {
		t.Fatalf("expected enum Color, got %#v", color)
	}

	names := table.Names()
	want := []string{"User", "Settings", "Status", "Color"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected name order %v, got %v", want, names)
		}
	}
}

func TestResolveAnnotatedOccurrence(t *testing.T) {
	file := parseSource(t, "resolve.ts", `interface Account {
  id: number
}

function open(acct: Account) {}
`)
	resolver := NewResolver(file)
	param := findKind(file.Root(), "required_parameter")
	if param == nil {
		t.Fatalf("expected parameter node")
	}
	typeNode := findKind(param, "type_identifier")
	resolved := resolver.Resolve(typeNode, nil)
	if resolved.Text != "Account" {
		t.Fatalf("expected Account text, got %q", resolved.Text)
	}
	if resolved.Decl == nil || resolved.Decl.Kind != DeclInterface {
		t.Fatalf("expected backing interface declaration, got %#v", resolved.Decl)
	}
}

func TestResolveInitializerWidening(t *testing.T) {
	source := `const n = 42
const s = "hello"
const tmpl = ` + "`greeting`" + `
const flag = true
const when = new Date()
const list = [1, 2, 3]
const empty = []
const settings = { retries: 3, verbose: false }
const handler = function (e: Event): void {}
const mapper = (x: number) => x
const casted = loadConfig() as AppConfig
const mystery = loadConfig()
`
	file := parseSource(t, "init.ts", source)
	resolver := NewResolver(file)

	want := []string{
		"number",
		"string",
		"string",
		"boolean",
		"Date",
		"number[]",
		"never[]",
		"{ retries: number; verbose: boolean }",
		"(e: Event) => void",
		"(x: number) => void",
		"AppConfig",
		"any",
	}

	var got []string
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if node.Kind() == "variable_declarator" {
			got = append(got, resolver.Resolve(nil, node.ChildByFieldName("value")).Text)
			return
		}
		for i := uint(0); i < node.NamedChildCount(); i++ {
			walk(node.NamedChild(i))
		}
	}
	walk(file.Root())

	if len(got) != len(want) {
		t.Fatalf("expected %d declarators, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("declarator %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDeclarationOfUnwrapsExport(t *testing.T) {
	file := parseSource(t, "unwrap.ts", "export interface Wrapped { id: number }\n")
	top := parser.NamedChildren(file.Root())
	if len(top) != 1 {
		t.Fatalf("expected one top-level node, got %d", len(top))
	}
	decl := DeclarationOf(top[0])
	if decl == nil || decl.Kind() != "interface_declaration" {
		t.Fatalf("expected unwrapped interface declaration, got %v", decl)
	}
}
