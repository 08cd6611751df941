package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  tsurface extract [--jsdoc] [--defaults] [--format=json|yaml] [--out=path] <file.ts>")
	fmt.Fprintln(os.Stderr, "  tsurface scan [--jsdoc] [--defaults] [--format=json|yaml] [--out=path] [root]")
	fmt.Fprintln(os.Stderr, "  tsurface scan [--manifest=path] [--include=glob ...] [--exclude=glob ...] [root]")
	fmt.Fprintln(os.Stderr, "  tsurface scan --git=<url> [--rev=<revision>] [flags]")
	fmt.Fprintln(os.Stderr, "  tsurface init [dir]")
	fmt.Fprintln(os.Stderr, "  tsurface <file.ts>")
}
