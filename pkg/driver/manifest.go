package driver

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file name project scans look for.
const ManifestName = "surface.yml"

// ErrManifestNotFound reports that no surface.yml exists at or above the
// requested directory.
var ErrManifestNotFound = errors.New("surface.yml not found")

// Manifest configures a project scan: which sources to read, which output
// fields to populate, and how to render the report.
type Manifest struct {
	Path     string
	Project  string
	Include  []string
	Exclude  []string
	JSDoc    bool
	Defaults bool
	Format   Format
	Out      string
}

// NewManifest seeds a manifest for a project with the default include set.
func NewManifest(project string) *Manifest {
	return &Manifest{
		Project: strings.TrimSpace(project),
		Include: []string{"**/*.ts", "**/*.tsx"},
		Exclude: []string{"**/*.test.ts", "**/*.spec.ts"},
		Format:  FormatJSON,
	}
}

// LoadManifest parses a surface.yml from disk.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	manifest, err := raw.toManifest()
	if err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", abs, err)
	}
	manifest.Path = abs
	manifest.normalize()
	return manifest, nil
}

// LocateManifest walks from start up toward the filesystem root looking
// for a surface.yml. It returns ErrManifestNotFound when no directory on
// the way has one.
func LocateManifest(start string) (*Manifest, error) {
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", start, err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return LoadManifest(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrManifestNotFound
		}
		dir = parent
	}
}

// WriteManifest serialises the manifest to disk.
func WriteManifest(manifest *Manifest, path string) error {
	if manifest == nil {
		return fmt.Errorf("manifest: nil manifest")
	}
	if path == "" {
		if manifest.Path == "" {
			return fmt.Errorf("manifest: missing path")
		}
		path = manifest.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	manifest.Path = abs
	manifest.normalize()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(manifest.toDisk()); err != nil {
		return fmt.Errorf("manifest: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("manifest: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", abs, err)
	}
	return nil
}

// ScanOptions builds the scan configuration this manifest describes,
// rooted at the manifest's directory.
func (m *Manifest) ScanOptions() ScanOptions {
	opts := ScanOptions{Root: "."}
	if m == nil {
		return opts
	}
	if m.Path != "" {
		opts.Root = filepath.Dir(m.Path)
	}
	opts.Include = append(opts.Include, m.Include...)
	opts.Exclude = append(opts.Exclude, m.Exclude...)
	opts.Extract.IncludeJSDoc = m.JSDoc
	opts.Extract.IncludeDefaultValues = m.Defaults
	return opts
}

func (m *Manifest) normalize() {
	if m == nil {
		return
	}
	m.Project = strings.TrimSpace(m.Project)
	m.Include = cleanPatterns(m.Include)
	m.Exclude = cleanPatterns(m.Exclude)
	if m.Format == "" {
		m.Format = FormatJSON
	}
	m.Out = strings.TrimSpace(m.Out)
}

func cleanPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (m *Manifest) toDisk() manifestDisk {
	return manifestDisk{
		Project: m.Project,
		Include: m.Include,
		Exclude: m.Exclude,
		Options: manifestOptions{
			JSDoc:    m.JSDoc,
			Defaults: m.Defaults,
		},
		Output: manifestOutput{
			Format: string(m.Format),
			Path:   m.Out,
		},
	}
}

type manifestDisk struct {
	Project string          `yaml:"project"`
	Include []string        `yaml:"include,omitempty"`
	Exclude []string        `yaml:"exclude,omitempty"`
	Options manifestOptions `yaml:"options"`
	Output  manifestOutput  `yaml:"output,omitempty"`
}

type manifestOptions struct {
	JSDoc    bool `yaml:"jsdoc"`
	Defaults bool `yaml:"defaults"`
}

type manifestOutput struct {
	Format string `yaml:"format,omitempty"`
	Path   string `yaml:"path,omitempty"`
}

func (d manifestDisk) toManifest() (*Manifest, error) {
	format, err := ParseFormat(d.Output.Format)
	if err != nil {
		return nil, err
	}
	manifest := &Manifest{
		Project:  strings.TrimSpace(d.Project),
		Include:  cleanPatterns(d.Include),
		Exclude:  cleanPatterns(d.Exclude),
		JSDoc:    d.Options.JSDoc,
		Defaults: d.Options.Defaults,
		Format:   format,
		Out:      strings.TrimSpace(d.Output.Path),
	}
	return manifest, nil
}
