// Package config loads and saves ember.toml, the project manifest
// embersolid reads to find its globals input and solidify defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the manifest's canonical filename, found by walking
// up from the working directory the way FindAndLoad does.
const ManifestFileName = "ember.toml"

// Manifest is the parsed shape of ember.toml.
type Manifest struct {
	Project  Project  `toml:"project"`
	Input    Input    `toml:"input"`
	Solidify Solidify `toml:"solidify"`

	// Dir is the directory containing ember.toml, set at load time.
	Dir string `toml:"-"`
}

// Project carries package identity, mirroring the shape every manifest in
// the pack uses for its [project]/[package] table.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Input configures where embersolid reads the host's global bindings
// from: a JSON file mapping names to arbitrary JSON values, standing in
// for a live VM's global table (see internal/vm.FromGo).
type Input struct {
	Path string `toml:"path"`
}

// Solidify configures embersolid's default dump behavior, overridable by
// CLI flags.
type Solidify struct {
	LiteralMode  bool   `toml:"literal-mode"`
	BuiltinCount int    `toml:"builtin-count"`
	Prefix       string `toml:"prefix"`
	Output       string `toml:"output"`
}

// Load parses ember.toml from dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if m.Input.Path == "" {
		m.Input.Path = "globals.json"
	}
	if m.Solidify.BuiltinCount == 0 {
		m.Solidify.BuiltinCount = DefaultBuiltinCount
	}

	return &m, nil
}

// DefaultBuiltinCount is used when a manifest omits solidify.builtin-count.
const DefaultBuiltinCount = 64

// FindAndLoad walks up from startDir looking for ember.toml and loads the
// first one found. Returns nil, nil if none exists anywhere above startDir.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ManifestFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Save writes m back to ember.toml under m.Dir.
func (m *Manifest) Save() error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(m.Dir, ManifestFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// InputPath joins m.Dir and the configured globals path. The result is
// absolute when m.Dir is, as it always is after Load; a manifest from
// GenerateDefault keeps the dir it was given.
func (m *Manifest) InputPath() string {
	return filepath.Join(m.Dir, m.Input.Path)
}

// GenerateDefault produces a manifest for a fresh project rooted at dir.
func GenerateDefault(dir string) *Manifest {
	name := filepath.Base(dir)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "ember-project"
	}
	return &Manifest{
		Dir:     dir,
		Project: Project{Name: name, Version: "0.1.0"},
		Input:   Input{Path: "globals.json"},
		Solidify: Solidify{
			BuiltinCount: DefaultBuiltinCount,
			Output:       "solidified.go",
		},
	}
}
