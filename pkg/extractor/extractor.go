package extractor

import (
	"fmt"
	"os"

	"tsurface/extractor-go/pkg/model"
	"tsurface/extractor-go/pkg/parser"
)

// Options controls optional output fields. Both default to off.
type Options struct {
	// IncludeJSDoc populates description fields from documentation
	// comments. When off the extractor never reads comments.
	IncludeJSDoc bool
	// IncludeDefaultValues populates parameter defaults with the raw
	// initializer text, quotes included.
	IncludeDefaultValues bool
}

// Extractor parses TypeScript sources and extracts their surface. One
// extractor can process any number of files; repeated parses of identical
// content are served from a shared cache.
type Extractor struct {
	parser *parser.SourceParser
	opts   Options
}

// New creates an extractor with the given options.
func New(opts Options) (*Extractor, error) {
	p, err := parser.NewSourceParser()
	if err != nil {
		return nil, fmt.Errorf("extractor: %w", err)
	}
	return &Extractor{parser: p, opts: opts}, nil
}

// Close releases the underlying parsers.
func (e *Extractor) Close() {
	e.parser.Close()
}

// Parse extracts the surface of in-memory source text. The file name picks
// the dialect: .tsx files parse with the TSX grammar.
func (e *Extractor) Parse(source []byte, fileName string) (model.Surface, error) {
	file, err := e.parser.Parse(source, fileName)
	if err != nil {
		return model.Surface{}, fmt.Errorf("extractor: parse %s: %w", fileName, err)
	}
	return Extract(file, e.opts), nil
}

// ParseFile extracts the surface of a file on disk. Unreadable paths fail
// hard; no partial result is returned.
func (e *Extractor) ParseFile(path string) (model.Surface, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return model.Surface{}, fmt.Errorf("extractor: read %s: %w", path, err)
	}
	return e.Parse(source, path)
}

// Extract builds the surface of an already-parsed file.
func Extract(file *parser.File, opts Options) model.Surface {
	return assemble(file, opts)
}

// Parse extracts the surface of source text with a one-shot extractor.
func Parse(source []byte, fileName string, opts Options) (model.Surface, error) {
	e, err := New(opts)
	if err != nil {
		return model.Surface{}, err
	}
	defer e.Close()
	return e.Parse(source, fileName)
}

// ParseFile extracts the surface of a file on disk with a one-shot
// extractor.
func ParseFile(path string, opts Options) (model.Surface, error) {
	e, err := New(opts)
	if err != nil {
		return model.Surface{}, err
	}
	defer e.Close()
	return e.ParseFile(path)
}
