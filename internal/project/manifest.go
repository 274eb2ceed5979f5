package project

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed roster.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the roster.toml layout.
type Config struct {
	Package PackageConfig `toml:"package"`
	Input   InputConfig   `toml:"input"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type InputConfig struct {
	Main string `toml:"main"`
}

// LoadManifest searches upward from startDir for roster.toml and parses it.
// ok is false when no manifest exists anywhere above startDir.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindRosterToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %q: %w", manifestPath, err)
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// MainInput resolves the manifest's input.main relative to the project root.
// ok is false when the manifest does not name a main input.
func (m *Manifest) MainInput() (string, bool) {
	if m == nil || m.Config.Input.Main == "" {
		return "", false
	}
	return filepath.Join(m.Root, m.Config.Input.Main), true
}
