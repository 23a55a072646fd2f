/*
File    : sigmaf/cmd/sigmaf/main.go
Package : main
*/

// Package main is the entry point for the SigmaF interpreter. It
// provides REPL mode (default), file execution mode, and the
// file-then-REPL combination, per spec.md §6.1.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sigmaf-lang/sigmaf/driver"
	"github.com/sigmaf-lang/sigmaf/object"
)

var redColor = color.New(color.FgRed)

func main() {
	var (
		path        string
		replAfter   bool
		showVersion bool
		banner      = true
	)

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version":
			showVersion = true
		case "-r", "--repl":
			replAfter = true
		case "-c", "--cover":
			banner = true
		case "-n", "--ncover":
			banner = false
		default:
			if path != "" {
				redColor.Fprintf(os.Stderr, "Unexpected argument %q\n", arg)
				os.Exit(1)
			}
			path = arg
		}
	}

	cfg, err := driver.LoadConfig()
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not load configuration: %v\n", err)
		os.Exit(1)
	}

	if showVersion {
		fmt.Printf("SigmaF %s (%s)\n", cfg.Version, cfg.License)
		return
	}

	if path == "" {
		driver.NewREPL(cfg).Start(os.Stdout, banner)
		return
	}

	if filepath.Ext(path) != ".sf" {
		redColor.Fprintf(os.Stderr, "Unknown file extension for %q: expected .sf\n", path)
		os.Exit(1)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		redColor.Fprintf(os.Stderr, "Could not find file %q\n", path)
		os.Exit(1)
	}

	env, result, err := driver.RunFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if object.IsError(result) {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		if !replAfter {
			os.Exit(1)
		}
	}

	if replAfter {
		driver.NewREPLWithEnv(cfg, env).Start(os.Stdout, banner)
	}
}
