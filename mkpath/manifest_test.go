// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

package mkpath

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const manifestYAML = `
version: 1
dirs:
  - path: /run/sandbox
  - path: /var/cache/sandbox
    mode: "0700"
`

func TestParseManifest(t *testing.T) {
	t.Parallel()

	man, err := ParseManifest([]byte(manifestYAML))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}
	if man.Version != 1 {
		t.Errorf("version = %d, want 1", man.Version)
	}
	if len(man.Dirs) != 2 {
		t.Fatalf("got %d dirs, want 2", len(man.Dirs))
	}
	if man.Dirs[0].Path != "/run/sandbox" || man.Dirs[0].Mode != "" {
		t.Errorf("dirs[0] = %+v", man.Dirs[0])
	}
	if man.Dirs[1].Path != "/var/cache/sandbox" || man.Dirs[1].Mode != "0700" {
		t.Errorf("dirs[1] = %+v", man.Dirs[1])
	}
}

func TestParseManifestInvalidYAML(t *testing.T) {
	t.Parallel()

	if _, err := ParseManifest([]byte("dirs: [}")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     DirSpec
		wantErr string
	}{
		{"relative path", DirSpec{Path: "run/sandbox"}, "not absolute"},
		{"empty path", DirSpec{Path: ""}, "not absolute"},
		{"dot segment", DirSpec{Path: "/a/../b"}, "dot segment"},
		{"non-octal mode", DirSpec{Path: "/a", Mode: "rwx"}, "invalid mode"},
		{"mode with extra bits", DirSpec{Path: "/a", Mode: "7777"}, "invalid mode"},
		{"zero mode", DirSpec{Path: "/a", Mode: "0"}, "invalid mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			man := &Manifest{Dirs: []DirSpec{tc.dir}}
			err := man.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestManifestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	man := &Manifest{Dirs: []DirSpec{
		{Path: "relative"},
		{Path: "/ok"},
		{Path: "/bad/mode", Mode: "99"},
	}}
	err := man.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "dirs[0]") || !strings.Contains(err.Error(), "dirs[2]") {
		t.Errorf("error %q should report both bad entries", err)
	}
	if strings.Contains(err.Error(), "dirs[1]") {
		t.Errorf("error %q reports the valid entry", err)
	}
}

func TestApplyOn(t *testing.T) {
	t.Parallel()

	man, err := ParseManifest([]byte(manifestYAML))
	if err != nil {
		t.Fatal(err)
	}

	fsys := afero.NewMemMapFs()
	m := Materializer{}
	if err := m.ApplyOn(fsys, man); err != nil {
		t.Fatalf("ApplyOn failed: %v", err)
	}

	for _, level := range []string{"/run/sandbox", "/var/cache/sandbox"} {
		info, err := fsys.Stat(level)
		if err != nil || !info.IsDir() {
			t.Errorf("manifest dir %s not materialized: info=%v err=%v", level, info, err)
		}
	}

	// The per-entry mode overrides the materializer default.
	info, err := fsys.Stat("/var/cache/sandbox")
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o700 {
		t.Errorf("mode = %o, want 0700", info.Mode().Perm())
	}
}
