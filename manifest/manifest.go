// Package manifest handles tack.toml build configuration.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a tack.toml build configuration. Every field has a
// default; command-line flags override manifest values.
type Manifest struct {
	Build Build `toml:"build"`
}

// Build configures output and target selection.
type Build struct {
	Output string `toml:"output"` // executable name
	Triple string `toml:"triple"` // target triple, "" for host
	Opt    int    `toml:"opt"`    // optimization level 0-3
	CC     string `toml:"cc"`     // C compiler used for linking
}

// Default returns a manifest with all defaults applied.
func Default() *Manifest {
	return &Manifest{
		Build: Build{
			Output: "main",
			CC:     "cc",
		},
	}
}

// Load parses tack.toml from the given directory. A missing file is not
// an error: the defaults apply.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "tack.toml")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	m := Default()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if m.Build.Output == "" {
		m.Build.Output = "main"
	}
	if m.Build.CC == "" {
		m.Build.CC = "cc"
	}
	if m.Build.Opt < 0 || m.Build.Opt > 3 {
		return nil, fmt.Errorf("%s: opt must be between 0 and 3, got %d", path, m.Build.Opt)
	}
	return m, nil
}
