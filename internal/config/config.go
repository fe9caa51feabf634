// Package config loads the optional clay.yaml configuration file.
//
// Configuration is deliberately small: the export tree location, meshing
// and rendering resolutions, the preview view set, and the viewer command.
// A missing file is not an error — every field has a default — but a file
// that exists and fails to parse is, so typos surface instead of silently
// producing artifacts in the wrong place.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/clay/internal/export"
	"github.com/mmr-tortoise/clay/internal/model"
)

// Config holds all tunable settings for the clay CLI.
type Config struct {
	// BaseDir is the root of the export tree. Relative paths are resolved
	// against the working directory of the invocation.
	BaseDir string `yaml:"baseDir"`

	// MeshCells is the STL meshing resolution handed to the CAD library.
	MeshCells int `yaml:"meshCells"`

	// SVGCells is the 2D rendering resolution for SVG previews.
	SVGCells int `yaml:"svgCells"`

	// Views maps preview names to rotation angles in degrees. When empty,
	// the default single "front" view is used.
	Views map[string]export.View `yaml:"views"`

	// Viewer is the command used to open the temporary STL for interactive
	// display. Empty means the platform default (xdg-open / open).
	Viewer string `yaml:"viewer"`
}

// Default returns the configuration used when no clay.yaml exists.
func Default() Config {
	return Config{
		BaseDir:   "models",
		MeshCells: export.DefaultMeshCells,
		SVGCells:  export.DefaultSVGCells,
		Views:     export.DefaultViews(),
	}
}

// Load reads and parses a clay.yaml file at an explicit path, then fills
// unset fields from the defaults. The file must exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	return withDefaults(cfg), nil
}

// Find searches the standard locations for a clay.yaml file and returns
// the first one that exists.
//
// Search order:
//  1. ./clay.yaml (per-project configuration)
//  2. $XDG_CONFIG_HOME/clay/clay.yaml, falling back to ~/.config/clay/clay.yaml
//
// The boolean result reports whether a file was found.
func Find() (string, bool) {
	candidates := []string{"clay.yaml"}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, "clay", "clay.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// LoadDefault loads configuration from the first discovered clay.yaml,
// or returns the defaults when no file exists.
func LoadDefault() (Config, error) {
	path, found := Find()
	if !found {
		return Default(), nil
	}
	return Load(path)
}

// withDefaults fills zero-valued fields with their defaults so a partial
// clay.yaml (say, only baseDir) behaves predictably.
func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.BaseDir == "" {
		cfg.BaseDir = def.BaseDir
	}
	if cfg.MeshCells <= 0 {
		cfg.MeshCells = def.MeshCells
	}
	if cfg.SVGCells <= 0 {
		cfg.SVGCells = def.SVGCells
	}
	if len(cfg.Views) == 0 {
		cfg.Views = def.Views
	}
	return cfg
}
