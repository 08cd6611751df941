package driver

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeManifestFixture(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifestFixture(t, t.TempDir(), `project: billing-api
include:
  - src/**/*.ts
exclude:
  - "**/*.test.ts"
options:
  jsdoc: true
  defaults: true
output:
  format: yaml
  path: surface.out.yml
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	if manifest.Project != "billing-api" {
		t.Fatalf("expected project billing-api, got %q", manifest.Project)
	}
	if !reflect.DeepEqual(manifest.Include, []string{"src/**/*.ts"}) {
		t.Fatalf("unexpected include %v", manifest.Include)
	}
	if !reflect.DeepEqual(manifest.Exclude, []string{"**/*.test.ts"}) {
		t.Fatalf("unexpected exclude %v", manifest.Exclude)
	}
	if !manifest.JSDoc || !manifest.Defaults {
		t.Fatalf("expected both options on, got %+v", manifest)
	}
	if manifest.Format != FormatYAML || manifest.Out != "surface.out.yml" {
		t.Fatalf("unexpected output config %+v", manifest)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	path := writeManifestFixture(t, t.TempDir(), "project: minimal\n")
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	if manifest.Format != FormatJSON {
		t.Fatalf("expected json default, got %q", manifest.Format)
	}
	if manifest.JSDoc || manifest.Defaults {
		t.Fatalf("expected options off by default")
	}
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	path := writeManifestFixture(t, t.TempDir(), "project: x\nunknown_key: true\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestLoadManifestRejectsUnknownFormat(t *testing.T) {
	path := writeManifestFixture(t, t.TempDir(), "project: x\noutput:\n  format: xml\n")
	_, err := LoadManifest(path)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestWriteManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	manifest := NewManifest("demo")
	manifest.JSDoc = true
	path := filepath.Join(dir, ManifestName)
	if err := WriteManifest(manifest, path); err != nil {
		t.Fatalf("WriteManifest error: %v", err)
	}
	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	if loaded.Project != "demo" || !loaded.JSDoc || loaded.Defaults {
		t.Fatalf("unexpected manifest after round trip %+v", loaded)
	}
	if !reflect.DeepEqual(loaded.Include, manifest.Include) {
		t.Fatalf("include lost in round trip: %v", loaded.Include)
	}
}

func TestLocateManifestClimbs(t *testing.T) {
	root := t.TempDir()
	writeManifestFixture(t, root, "project: above\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest, err := LocateManifest(nested)
	if err != nil {
		t.Fatalf("LocateManifest error: %v", err)
	}
	if manifest.Project != "above" {
		t.Fatalf("expected project above, got %q", manifest.Project)
	}
}

func TestLocateManifestMissing(t *testing.T) {
	_, err := LocateManifest(t.TempDir())
	if !errors.Is(err, ErrManifestNotFound) {
		t.Fatalf("expected ErrManifestNotFound, got %v", err)
	}
}

func TestManifestScanOptions(t *testing.T) {
	root := t.TempDir()
	path := writeManifestFixture(t, root, `project: svc
include:
  - api/**/*.ts
options:
  jsdoc: true
  defaults: false
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	opts := manifest.ScanOptions()
	if opts.Root != filepath.Dir(path) {
		t.Fatalf("expected root %s, got %s", filepath.Dir(path), opts.Root)
	}
	if !opts.Extract.IncludeJSDoc || opts.Extract.IncludeDefaultValues {
		t.Fatalf("unexpected extract options %+v", opts.Extract)
	}
	if !reflect.DeepEqual(opts.Include, []string{"api/**/*.ts"}) {
		t.Fatalf("unexpected include %v", opts.Include)
	}
}
