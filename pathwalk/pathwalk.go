// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

package pathwalk

import (
	"fmt"
	"iter"
	"strings"
)

// Separator is the path component separator.
const Separator byte = '/'

// Terminator is the sentinel some callers write over consumed
// separators when scanning a buffer in place. The walker treats it as
// a boundary so pre-rewritten buffers walk the same as raw paths.
const Terminator byte = 0

// IsBoundary reports whether c delimits path segments.
func IsBoundary(c byte) bool {
	return c == Separator || c == Terminator
}

// Next returns the next non-empty segment of path at or after *cursor,
// advancing the cursor past the segment and its terminating boundary.
// It returns ok == false once the path is exhausted; further calls keep
// returning ok == false without moving the cursor.
//
// Boundary runs of any length collapse into a single boundary, so
// consecutive, leading, and trailing separators never produce an empty
// segment. A run of non-boundary bytes at the very start of the buffer
// is treated as already consumed when a boundary terminates it: the
// walk of "..///path" yields only "path", matching the convention
// where a leading separator carries the root and anything before the
// first boundary belongs to the caller's previous level. A buffer with
// no boundary at all is a single segment equal to the whole buffer.
//
// The returned segment is a view into path, valid as long as path is.
// A cursor outside [0, len(path)] is a contract violation and panics:
// silently clamping here could hand a wrong mount target to the
// security-sensitive caller above.
func Next(path string, cursor *int) (segment string, ok bool) {
	i := *cursor
	if i < 0 || i > len(path) {
		panic(fmt.Sprintf("pathwalk: cursor %d out of range [0, %d]", i, len(path)))
	}

	if i == 0 && len(path) > 0 && !IsBoundary(path[0]) {
		j := 1
		for j < len(path) && !IsBoundary(path[j]) {
			j++
		}
		if j == len(path) {
			// No boundary anywhere: the whole buffer is the
			// one and only segment.
			*cursor = j
			return path, true
		}
		// A boundary terminates the leading run, so the run counts
		// as consumed. Resume scanning at the boundary.
		i = j
	}

	for i < len(path) && IsBoundary(path[i]) {
		i++
	}
	if i == len(path) {
		*cursor = i
		return "", false
	}

	start := i
	for i < len(path) && !IsBoundary(path[i]) {
		i++
	}
	segment = path[start:i]
	if i < len(path) {
		i++ // step over the boundary that ended the segment
	}
	*cursor = i
	return segment, true
}

// Segments returns an iterator over the segments of path, in
// root-to-leaf order, with the same boundary semantics as [Next].
func Segments(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		cursor := 0
		for {
			segment, ok := Next(path, &cursor)
			if !ok {
				return
			}
			if !yield(segment) {
				return
			}
		}
	}
}

// Canonical joins the segments of path with single separators:
// duplicate boundaries collapse and leading and trailing boundaries
// are stripped. Canonical("") and Canonical("///") are "".
func Canonical(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for segment := range Segments(path) {
		if b.Len() > 0 {
			b.WriteByte(Separator)
		}
		b.WriteString(segment)
	}
	return b.String()
}
