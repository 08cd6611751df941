package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tsurface/extractor-go/pkg/driver"
)

func runScan(args []string) int {
	var (
		manifestPath string
		gitURL       string
		gitRev       string
		includes     []string
		excludes     []string
		jsdoc        bool
		defaults     bool
		formatValue  string
		outFlag      string
		roots        []string
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--jsdoc":
			jsdoc = true
		case arg == "--defaults":
			defaults = true
		case arg == "--manifest" || strings.HasPrefix(arg, "--manifest="):
			value, err := flagValue(args, &i, "--manifest")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			manifestPath = value
		case arg == "--git" || strings.HasPrefix(arg, "--git="):
			value, err := flagValue(args, &i, "--git")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			gitURL = value
		case arg == "--rev" || strings.HasPrefix(arg, "--rev="):
			value, err := flagValue(args, &i, "--rev")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			gitRev = value
		case arg == "--include" || strings.HasPrefix(arg, "--include="):
			value, err := flagValue(args, &i, "--include")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			includes = append(includes, value)
		case arg == "--exclude" || strings.HasPrefix(arg, "--exclude="):
			value, err := flagValue(args, &i, "--exclude")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			excludes = append(excludes, value)
		case arg == "--format" || strings.HasPrefix(arg, "--format="):
			value, err := flagValue(args, &i, "--format")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			formatValue = value
		case arg == "--out" || strings.HasPrefix(arg, "--out="):
			value, err := flagValue(args, &i, "--out")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			outFlag = value
		case strings.HasPrefix(arg, "--"):
			fmt.Fprintf(os.Stderr, "unknown flag %s\n", arg)
			printUsage()
			return 1
		default:
			roots = append(roots, arg)
		}
	}

	if len(roots) > 1 {
		fmt.Fprintln(os.Stderr, "scan expects at most one root directory")
		return 1
	}
	if gitURL != "" && len(roots) > 0 {
		fmt.Fprintln(os.Stderr, "scan takes either a root directory or --git, not both")
		return 1
	}

	root := "."
	if len(roots) == 1 {
		root = roots[0]
	}
	if gitURL != "" {
		checkout, err := fetchGitSource(gitURL, gitRev)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		root = checkout
	}

	var manifest *driver.Manifest
	var err error
	switch {
	case manifestPath != "":
		manifest, err = driver.LoadManifest(manifestPath)
	case gitURL != "":
		// Only the checkout's own top-level manifest applies; never climb
		// out of the cache directory.
		candidate := filepath.Join(root, driver.ManifestName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			manifest, err = driver.LoadManifest(candidate)
		}
	default:
		manifest, err = driver.LocateManifest(root)
		if errors.Is(err, driver.ErrManifestNotFound) {
			manifest, err = nil, nil
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	opts := driver.ScanOptions{Root: root}
	format := driver.FormatJSON
	outPath := ""
	if manifest != nil {
		opts = manifest.ScanOptions()
		format = manifest.Format
		if manifest.Out != "" {
			outPath = manifest.Out
			if !filepath.IsAbs(outPath) && manifest.Path != "" {
				outPath = filepath.Join(filepath.Dir(manifest.Path), outPath)
			}
		}
		// An explicit root wins over the manifest's directory.
		if len(roots) == 1 || gitURL != "" {
			opts.Root = root
		}
	}
	if len(includes) > 0 {
		opts.Include = includes
	}
	if len(excludes) > 0 {
		opts.Exclude = excludes
	}
	if jsdoc {
		opts.Extract.IncludeJSDoc = true
	}
	if defaults {
		opts.Extract.IncludeDefaultValues = true
	}
	if formatValue != "" {
		format, err = driver.ParseFormat(formatValue)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if outFlag != "" {
		outPath = outFlag
	}

	report, err := driver.Scan(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", warning.File, warning.Message)
	}
	data, err := report.Encode(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return writeOutput(data, outPath)
}
