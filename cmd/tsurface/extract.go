package main

import (
	"fmt"
	"os"
	"strings"

	"tsurface/extractor-go/pkg/driver"
	"tsurface/extractor-go/pkg/extractor"
)

func runExtract(args []string) int {
	opts := extractor.Options{}
	formatValue := ""
	outPath := ""
	var paths []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--jsdoc":
			opts.IncludeJSDoc = true
		case arg == "--defaults":
			opts.IncludeDefaultValues = true
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
			outPath = value
		case strings.HasPrefix(arg, "--"):
			fmt.Fprintf(os.Stderr, "unknown flag %s\n", arg)
			printUsage()
			return 1
		default:
			paths = append(paths, arg)
		}
	}

	if len(paths) != 1 {
		fmt.Fprintln(os.Stderr, "extract expects exactly one source file")
		printUsage()
		return 1
	}
	format, err := driver.ParseFormat(formatValue)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	surface, err := extractor.ParseFile(paths[0], opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	data, err := driver.EncodeSurface(surface, format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return writeOutput(data, outPath)
}

// flagValue reads a flag's value, accepting both "--flag value" and
// "--flag=value" forms.
func flagValue(args []string, i *int, name string) (string, error) {
	arg := args[*i]
	if arg == name {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s expects a value", name)
		}
		*i++
		return args[*i], nil
	}
	value := strings.TrimPrefix(arg, name+"=")
	if value == "" {
		return "", fmt.Errorf("%s expects a value", name)
	}
	return value, nil
}

func writeOutput(data []byte, outPath string) int {
	if outPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		return 1
	}
	return 0
}
