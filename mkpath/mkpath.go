// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

package mkpath

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/confinelabs/mountprep/pathwalk"
)

// DefaultPerm is the permission bits used for created directories when
// a Materializer does not set its own.
const DefaultPerm fs.FileMode = 0o755

var (
	// ErrNotAbsolute is returned for targets that do not start at the
	// filesystem root. Mount targets are always absolute.
	ErrNotAbsolute = errors.New("path is not absolute")

	// ErrDotSegment is returned for targets containing a "." or ".."
	// component. A ".." level would walk the chain out of its root.
	ErrDotSegment = errors.New("path contains a dot segment")

	// ErrNotDirectory is returned when an existing level of the chain
	// is not a plain directory (a regular file, or a symlink the
	// descent refuses to follow).
	ErrNotDirectory = errors.New("existing path component is not a directory")
)

// Materializer creates directory chains level by level.
type Materializer struct {
	// Perm is the permission bits for created directories.
	// Zero means DefaultPerm.
	Perm fs.FileMode

	// Logger enables debug logging of each created level. Nil means
	// silent.
	Logger *slog.Logger
}

func (m *Materializer) perm() fs.FileMode {
	if m.Perm == 0 {
		return DefaultPerm
	}
	return m.Perm
}

// log is a helper that only logs if a logger is configured.
func (m *Materializer) log(msg string, args ...any) {
	if m.Logger != nil {
		m.Logger.Debug(msg, args...)
	}
}

// checkTarget validates a chain target: absolute and free of dot
// segments.
func checkTarget(path string) error {
	if path == "" || path[0] != pathwalk.Separator {
		return fmt.Errorf("%q: %w", path, ErrNotAbsolute)
	}
	for segment := range pathwalk.Segments(path) {
		if segment == "." || segment == ".." {
			return fmt.Errorf("%q: %w", path, ErrDotSegment)
		}
	}
	return nil
}

// CreateOn materializes every missing level of path on fsys. Existing
// directory levels are kept; an existing non-directory level aborts
// with ErrNotDirectory. The path must be absolute and free of dot
// segments.
func (m *Materializer) CreateOn(fsys afero.Fs, path string) error {
	if err := checkTarget(path); err != nil {
		return err
	}
	level := ""
	for segment := range pathwalk.Segments(path) {
		level += string(pathwalk.Separator) + segment
		info, err := fsys.Stat(level)
		switch {
		case err == nil:
			if !info.IsDir() {
				return fmt.Errorf("%s: %w", level, ErrNotDirectory)
			}
		case os.IsNotExist(err):
			if err := fsys.Mkdir(level, m.perm()); err != nil && !os.IsExist(err) {
				return fmt.Errorf("mkdir %s: %w", level, err)
			}
			m.log("created directory level", "path", level)
		default:
			return fmt.Errorf("stat %s: %w", level, err)
		}
	}
	return nil
}

// Create materializes every missing level of path on the host
// filesystem. See the platform implementations for descent semantics.
func (m *Materializer) Create(path string) error {
	return m.create(path)
}

// Create materializes path on the host filesystem with perm, using a
// zero-value Materializer when no further configuration is needed.
func Create(path string, perm fs.FileMode) error {
	m := Materializer{Perm: perm}
	return m.Create(path)
}
