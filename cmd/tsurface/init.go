package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tsurface/extractor-go/pkg/driver"
)

func runInit(args []string) int {
	var dirs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			fmt.Fprintf(os.Stderr, "unknown flag %s\n", arg)
			printUsage()
			return 1
		}
		dirs = append(dirs, arg)
	}
	if len(dirs) > 1 {
		fmt.Fprintln(os.Stderr, "init expects at most one directory")
		return 1
	}
	dir := "."
	if len(dirs) == 1 {
		dir = dirs[0]
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve %s: %v\n", dir, err)
		return 1
	}
	path := filepath.Join(abs, driver.ManifestName)
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "%s already exists\n", path)
		return 1
	}

	manifest := driver.NewManifest(filepath.Base(abs))
	if err := driver.WriteManifest(manifest, path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("created %s\n", path)
	return 0
}
