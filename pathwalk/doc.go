// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathwalk tokenizes filesystem paths one segment at a time for
// mount-target construction.
//
// The core primitive is [Next], which scans a path buffer from a
// caller-owned cursor and returns the next non-empty component as a
// zero-copy view into the input. The cursor-by-reference shape makes a
// walk restartable and allocation-free: a mount-plan executor can hold
// the cursor across its own per-level work (probing a directory,
// creating it, assembling the next bind-mount target) and resume the
// walk exactly where it left off. [Segments] wraps the same scan as an
// iterator for plain range loops, and [Canonical] rebuilds the
// collapsed form of a path from its segments.
//
// The walker detects boundaries only; it never interprets segment
// contents. A "." or ".." component is returned like any other, and
// callers that care about dot semantics must handle them. Two byte
// values count as a boundary: the separator '/' and the NUL terminator,
// so buffers whose separators were pre-rewritten to NUL (the
// convention of callers that scan in place) walk identically to raw
// paths.
//
// One walk (one path, one cursor) belongs to a single logical sequence
// of calls. Independent walks over independent buffers need no
// coordination.
package pathwalk
