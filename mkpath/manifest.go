// Copyright 2026 The Mountprep Authors
// SPDX-License-Identifier: Apache-2.0

package mkpath

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Manifest declares directories to materialize before mounting,
// typically sourced from a sandbox profile's create_dirs block.
type Manifest struct {
	Version int       `yaml:"version,omitempty"`
	Dirs    []DirSpec `yaml:"dirs"`
}

// DirSpec is one directory chain to create.
type DirSpec struct {
	// Path is the absolute target. Every missing level of it is
	// created.
	Path string `yaml:"path"`

	// Mode is the permission bits for created levels as an octal
	// string, e.g. "0755". Empty means the Materializer's default.
	Mode string `yaml:"mode,omitempty"`
}

func (d DirSpec) perm() (fs.FileMode, error) {
	if d.Mode == "" {
		return 0, nil
	}
	bits, err := strconv.ParseUint(d.Mode, 8, 32)
	if err != nil || bits == 0 || bits > 0o777 {
		return 0, fmt.Errorf("invalid mode %q (must be octal permission bits)", d.Mode)
	}
	return fs.FileMode(bits), nil
}

// ParseManifest parses and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// Validate checks every entry: paths must be absolute and free of dot
// segments, modes must be octal permission bits.
func (m *Manifest) Validate() error {
	var errs []string
	for i, d := range m.Dirs {
		if err := checkTarget(d.Path); err != nil {
			errs = append(errs, fmt.Sprintf("dirs[%d]: %v", i, err))
		}
		if _, err := d.perm(); err != nil {
			errs = append(errs, fmt.Sprintf("dirs[%d]: %v", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Apply materializes every directory in the manifest on the host
// filesystem. Entry modes override the Materializer's permission bits.
func (m *Materializer) Apply(man *Manifest) error {
	return m.apply(man, nil)
}

// ApplyOn is Apply against an afero filesystem.
func (m *Materializer) ApplyOn(fsys afero.Fs, man *Manifest) error {
	return m.apply(man, fsys)
}

func (m *Materializer) apply(man *Manifest, fsys afero.Fs) error {
	if err := man.Validate(); err != nil {
		return err
	}
	for _, d := range man.Dirs {
		perm, err := d.perm()
		if err != nil {
			return err
		}
		entry := Materializer{Perm: perm, Logger: m.Logger}
		if perm == 0 {
			entry.Perm = m.perm()
		}
		if fsys != nil {
			err = entry.CreateOn(fsys, d.Path)
		} else {
			err = entry.Create(d.Path)
		}
		if err != nil {
			return fmt.Errorf("manifest dir %s: %w", d.Path, err)
		}
	}
	return nil
}
