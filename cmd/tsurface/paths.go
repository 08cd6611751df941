package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// checkoutCacheDir resolves the root directory for cached git checkouts.
// TSURFACE_CACHE overrides the per-user default.
func checkoutCacheDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("TSURFACE_CACHE")); dir != "" {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "tsurface"), nil
}
