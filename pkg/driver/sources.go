package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// CollectSources walks root for TypeScript sources, honoring include and
// exclude patterns. Hidden directories and node_modules are never entered.
// Returned paths are slash-separated, relative to root, in walk order.
func CollectSources(root string, include, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("driver: scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("driver: scan root %s is not a directory", root)
	}
	var sources []string
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != root && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isTypeScriptFile(name) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchesAny(include, rel, true) || matchesAny(exclude, rel, false) {
			return nil
		}
		sources = append(sources, rel)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("driver: walk %s: %w", root, walkErr)
	}
	return sources, nil
}

func isTypeScriptFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".ts" || ext == ".tsx"
}

// matchesAny reports whether rel matches one of the patterns. An empty
// pattern list matches everything when emptyMatches is set.
func matchesAny(patterns []string, rel string, emptyMatches bool) bool {
	if len(patterns) == 0 {
		return emptyMatches
	}
	for _, pattern := range patterns {
		if MatchPattern(pattern, rel) {
			return true
		}
	}
	return false
}

// MatchPattern matches a slash-separated relative path against a glob
// pattern. "**" spans any number of segments; "*" stays within one. A
// pattern without a separator matches the base name alone.
func MatchPattern(pattern, rel string) bool {
	pattern = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(pattern)), "./")
	if pattern == "" {
		return false
	}
	rel = filepath.ToSlash(rel)
	if pattern != "**" && !strings.Contains(pattern, "/") {
		return matchSegments([]string{pattern}, []string{path.Base(rel)})
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(rel, "/"))
}

func matchSegments(pattern, name []string) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}
	if pattern[0] == "**" {
		if matchSegments(pattern[1:], name) {
			return true
		}
		if len(name) == 0 {
			return false
		}
		return matchSegments(pattern, name[1:])
	}
	if len(name) == 0 {
		return false
	}
	if ok, err := path.Match(pattern[0], name[0]); err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], name[1:])
}
