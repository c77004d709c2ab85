// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

// Mountprep inspects and materializes mount targets for sandbox
// construction. It provides four subcommands: segments (print the path
// segments a walker yields), canon (print the canonical form of a
// path), mkpath (materialize directory chains), and apply (materialize
// every directory in a YAML manifest).
package main
