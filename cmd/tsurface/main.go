package main

import (
	"fmt"
	"os"
)

const cliToolVersion = "tsurface 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "extract":
		return runExtract(args[1:])
	case "scan":
		return runScan(args[1:])
	case "init":
		return runInit(args[1:])
	default:
		// A bare file path behaves like extract.
		return runExtract(args)
	}
}
