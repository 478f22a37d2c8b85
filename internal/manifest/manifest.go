// Package manifest describes the shape of an astrixa.toml project file
// and locates the project root it lives in. Parsing astrixa.toml's TOML
// body is the CLI front-end's concern (see DESIGN.md); this package
// defines only the struct contract that front-end decodes into.
package manifest

import (
	"errors"
	"os"
	"path/filepath"
)

// FileName is the fixed name of the project manifest.
const FileName = "astrixa.toml"

// Package holds the [package] table of astrixa.toml.
type Package struct {
	Name        string
	Version     string
	Description string
	Authors     []string
	License     string
}

// Manifest is the full decoded shape of astrixa.toml.
type Manifest struct {
	Package         Package
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// New returns a fresh Manifest for a newly scaffolded project, matching
// the original CLI's `Config::new` defaults.
func New(name string) *Manifest {
	return &Manifest{
		Package: Package{
			Name:    name,
			Version: "0.1.0",
			License: "MIT",
		},
		Dependencies:    make(map[string]string),
		DevDependencies: make(map[string]string),
	}
}

// AddDependency records a dependency version requirement.
func (m *Manifest) AddDependency(name, version string) {
	if m.Dependencies == nil {
		m.Dependencies = make(map[string]string)
	}
	m.Dependencies[name] = version
}

// ErrNotFound is returned by FindProjectRoot when no astrixa.toml is
// found between dir and the filesystem root.
var ErrNotFound = errors.New("not in an astrixa project (no astrixa.toml found)")

// FindProjectRoot walks upward from dir (use "." for the current
// working directory) looking for a directory containing astrixa.toml.
func FindProjectRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(current, FileName)); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotFound
		}
		current = parent
	}
}
