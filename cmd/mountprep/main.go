// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

// mountprep inspects and materializes mount targets.
//
// Usage:
//
//	mountprep segments <path>
//	mountprep canon <path>
//	mountprep mkpath [flags] <path>...
//	mountprep apply --manifest <file>
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/confinelabs/mountprep/lib/version"
	"github.com/confinelabs/mountprep/mkpath"
	"github.com/confinelabs/mountprep/pathwalk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Set up logging.
	logLevel := slog.LevelInfo
	if os.Getenv("MOUNTPREP_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "segments":
		err = segmentsCmd(args)
	case "canon":
		err = canonCmd(args)
	case "mkpath":
		err = mkpathCmd(args, logger)
	case "apply":
		err = applyCmd(args, logger)
	case "version", "--version", "-v":
		fmt.Printf("mountprep %s\n", version.Info())
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func segmentsCmd(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mountprep segments <path>")
	}
	for segment := range pathwalk.Segments(args[0]) {
		fmt.Println(segment)
	}
	return nil
}

func canonCmd(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mountprep canon <path>")
	}
	fmt.Println(pathwalk.Canonical(args[0]))
	return nil
}

func mkpathCmd(args []string, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("mkpath", pflag.ContinueOnError)
	mode := flags.String("mode", "0755", "permission bits for created directories (octal)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("usage: mountprep mkpath [flags] <path>...")
	}

	bits, err := strconv.ParseUint(*mode, 8, 32)
	if err != nil || bits == 0 || bits > 0o777 {
		return fmt.Errorf("invalid --mode %q (must be octal permission bits)", *mode)
	}

	m := mkpath.Materializer{Perm: fs.FileMode(bits), Logger: logger}
	for _, path := range flags.Args() {
		if err := m.Create(path); err != nil {
			return err
		}
		logger.Info("materialized directory chain", "path", path)
	}
	return nil
}

func applyCmd(args []string, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("apply", pflag.ContinueOnError)
	manifestPath := flags.String("manifest", "", "path to a YAML directory manifest")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *manifestPath == "" {
		return fmt.Errorf("usage: mountprep apply --manifest <file>")
	}

	man, err := mkpath.LoadManifest(*manifestPath)
	if err != nil {
		return err
	}

	m := mkpath.Materializer{Logger: logger}
	if err := m.Apply(man); err != nil {
		return err
	}
	logger.Info("manifest applied", "manifest", *manifestPath, "dirs", len(man.Dirs))
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `mountprep - inspect and materialize mount targets

Usage:
  mountprep segments <path>            Print the segments a walk of <path> yields
  mountprep canon <path>               Print the canonical form of <path>
  mountprep mkpath [flags] <path>...   Create every missing level of each path
  mountprep apply --manifest <file>    Create every directory in a YAML manifest
  mountprep version                    Print version information

Flags for mkpath:
  --mode string   permission bits for created directories (octal, default "0755")

Environment:
  MOUNTPREP_DEBUG   enable debug logging when set
`)
}
