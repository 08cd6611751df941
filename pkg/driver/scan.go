// Package driver orchestrates project-level extraction: it locates
// TypeScript sources under a root via surface.yml manifests or explicit
// patterns, runs the extractor over each file, and renders the combined
// report as JSON or YAML.
package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"tsurface/extractor-go/pkg/extractor"
	"tsurface/extractor-go/pkg/model"
	"tsurface/extractor-go/pkg/parser"
)

// ScanOptions configure one project scan.
type ScanOptions struct {
	Root    string
	Include []string
	Exclude []string
	Extract extractor.Options
}

// Warning flags a file whose parse recovered from broken syntax. The file
// still contributes whatever declarations were recovered.
type Warning struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// Report is the result of scanning a project tree, keyed by path relative
// to the scan root. Files encode in scan order.
type Report struct {
	Files    map[string]model.Surface
	Warnings []Warning

	// order records file keys as they were scanned.
	order []string
}

// Scan extracts the surface of every TypeScript file under opts.Root.
// Unreadable files fail the scan; syntactically broken ones degrade to a
// warning plus whatever declarations were recovered.
func Scan(opts ScanOptions) (*Report, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	sources, err := CollectSources(root, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}
	p, err := parser.NewSourceParser()
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	defer p.Close()

	report := &Report{Files: make(map[string]model.Surface, len(sources))}
	for _, rel := range sources {
		full := filepath.Join(root, filepath.FromSlash(rel))
		source, err := os.ReadFile(full)
		if err != nil {
			return nil, fmt.Errorf("driver: read %s: %w", full, err)
		}
		file, err := p.Parse(source, rel)
		if err != nil {
			return nil, fmt.Errorf("driver: parse %s: %w", rel, err)
		}
		if diag := file.SyntaxDiagnostic(); diag != nil {
			report.Warnings = append(report.Warnings, Warning{File: rel, Message: diag.String()})
		}
		report.Files[rel] = extractor.Extract(file, opts.Extract)
		report.order = append(report.order, rel)
	}
	return report, nil
}
