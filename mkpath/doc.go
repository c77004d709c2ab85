// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

// Package mkpath materializes directory chains one level at a time.
//
// A mount-plan executor needs every level of a bind-mount target to
// exist before it can mount onto it, and it needs the target it probed
// to be the target it mounts on. [Materializer.Create] walks an
// absolute path segment by segment and creates each missing level with
// mkdirat relative to a descriptor of the previous level, descending
// with openat and O_NOFOLLOW so a symlink planted at any level aborts
// the chain instead of silently redirecting it off the intended
// target. [Materializer.CreateOn] is the portable variant over an
// afero filesystem, used on platforms without the *at syscalls and as
// the in-memory test target.
//
// [Manifest] declares a set of directories to pre-create, typically
// the create_dirs block of a sandbox profile. Deciding which
// directories belong in a manifest is the profile layer's business;
// this package only makes what it is handed exist.
package mkpath
