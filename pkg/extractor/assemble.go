package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/model"
	"tsurface/extractor-go/pkg/parser"
)

// assemble runs the scan-reduce-describe pipeline over one parsed file.
// Functions and constants come out in source order.
func assemble(file *parser.File, opts Options) model.Surface {
	scanned := scan(file)
	red := newReducer(file)
	surface := model.Surface{
		Functions: make([]model.FunctionInfo, 0, len(scanned.functions)),
		Constants: make([]model.ConstantInfo, 0, len(scanned.constants)),
	}
	for _, fn := range scanned.functions {
		surface.Functions = append(surface.Functions, buildFunction(file, red, fn, opts))
	}
	for _, constant := range scanned.constants {
		surface.Constants = append(surface.Constants, buildConstant(file, red, constant, opts))
	}
	return surface
}

func buildFunction(file *parser.File, red *reducer, fn scannedFunction, opts Options) model.FunctionInfo {
	info := model.FunctionInfo{Name: fn.name, Parameters: []model.Parameter{}}
	if info.Name == "" {
		info.Name = model.AnonymousFunctionName
	}
	if annotation := fn.fn.ChildByFieldName("return_type"); annotation != nil {
		if typeNode := parser.AnnotationType(annotation); typeNode != nil {
			info.ReturnType = file.Text(typeNode)
		}
	}
	var doc *docBlock
	if opts.IncludeJSDoc {
		doc = docFor(file, fn.decl)
		info.Description = doc.descriptionText()
	}
	for _, param := range parameterNodes(fn.fn) {
		info.Parameters = append(info.Parameters, buildParameter(file, red, doc, param, opts))
	}
	return info
}

func buildParameter(file *parser.File, red *reducer, doc *docBlock, param *sitter.Node, opts Options) model.Parameter {
	pattern := param.ChildByFieldName("pattern")
	if pattern == nil {
		pattern = param // bare identifier arrow parameter
	}
	var typeNode *sitter.Node
	if annotation := param.ChildByFieldName("type"); annotation != nil {
		typeNode = parser.AnnotationType(annotation)
	}
	value := param.ChildByFieldName("value")
	built := model.Parameter{
		Name:     parameterName(file, pattern),
		Type:     red.reduceOccurrence(typeNode, value),
		Required: param.Kind() != "optional_parameter" && value == nil,
	}
	if opts.IncludeDefaultValues && value != nil {
		built.DefaultValue = file.Text(value)
	}
	if opts.IncludeJSDoc {
		built.Description = doc.paramDescription(built.Name)
	}
	return built
}

// parameterName reads the bound name from a parameter pattern. Rest
// parameters yield the inner identifier; destructuring patterns keep their
// raw text.
func parameterName(file *parser.File, pattern *sitter.Node) string {
	if pattern.Kind() == "rest_pattern" {
		if inner := pattern.NamedChild(0); inner != nil {
			return file.Text(inner)
		}
	}
	return file.Text(pattern)
}

func buildConstant(file *parser.File, red *reducer, constant scannedConstant, opts Options) model.ConstantInfo {
	info := model.ConstantInfo{
		Name:  constant.name,
		Type:  red.resolver.Resolve(constant.typ, constant.value).Text,
		Value: file.Text(constant.value),
	}
	if opts.IncludeJSDoc {
		info.Description = describe(file, constant.decl)
	}
	return info
}
