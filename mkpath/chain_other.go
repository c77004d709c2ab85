// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package mkpath

import "github.com/spf13/afero"

// create on platforms without the *at syscall family falls back to the
// portable per-level probe-or-create over the host filesystem. This
// descent does not pin levels by descriptor, so it carries no symlink
// guarantee; the sandbox executors this package serves run on unix.
func (m *Materializer) create(path string) error {
	return m.CreateOn(afero.NewOsFs(), path)
}
