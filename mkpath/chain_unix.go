// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package mkpath

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/confinelabs/mountprep/pathwalk"
)

// openFlags opens a level strictly as a directory and refuses to
// follow a symlink in its place. Linux reports the refusal as ELOOP,
// the BSDs as EMLINK.
const openFlags = unix.O_RDONLY | unix.O_DIRECTORY | unix.O_NOFOLLOW | unix.O_CLOEXEC

// create walks path from the root one segment at a time, creating each
// missing level with mkdirat relative to the previous level's
// descriptor and descending with openat. Every level the chain ends up
// mounted on is therefore one it created or verified itself, never one
// reached through a symlink.
func (m *Materializer) create(path string) error {
	if err := checkTarget(path); err != nil {
		return err
	}
	perm := m.perm()

	fd, err := unix.Open("/", openFlags, 0)
	if err != nil {
		return fmt.Errorf("open /: %w", err)
	}

	level := ""
	cursor := 0
	for {
		segment, ok := pathwalk.Next(path, &cursor)
		if !ok {
			break
		}
		level += string(pathwalk.Separator) + segment

		err := unix.Mkdirat(fd, segment, uint32(perm.Perm()))
		switch {
		case err == nil:
			m.log("created directory level", "path", level)
		case errors.Is(err, unix.EEXIST):
			// Existing level; the openat below verifies it is a
			// real directory.
		default:
			unix.Close(fd)
			return fmt.Errorf("mkdir %s: %w", level, err)
		}

		next, err := unix.Openat(fd, segment, openFlags, 0)
		unix.Close(fd)
		if err != nil {
			if errors.Is(err, unix.ENOTDIR) || errors.Is(err, unix.ELOOP) || errors.Is(err, unix.EMLINK) {
				return fmt.Errorf("%s (%v): %w", level, err, ErrNotDirectory)
			}
			return fmt.Errorf("open %s: %w", level, err)
		}
		fd = next
	}
	unix.Close(fd)
	return nil
}
