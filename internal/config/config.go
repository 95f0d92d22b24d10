// Package config loads optional defaults for the virtenv CLI from a
// JSONC configuration file.
//
// Configuration is purely a convenience layer: every value has a flag
// equivalent, and flags always win. The file format supports JSONC (JSON
// with Comments) via github.com/tidwall/jsonc, stripped before parsing
// with the standard encoding/json library — the same approach editors use
// for their settings files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// fileNames are the config file names probed, in order, in the working
// directory and then in the user config directory.
var fileNames = []string{"virtenv.jsonc", "virtenv.json"}

// userConfigNames are the file names probed under <UserConfigDir>/virtenv.
var userConfigNames = []string{"config.jsonc", "config.json"}

// File represents the optional defaults file. Only the fields relevant to
// provisioning are included; unknown fields are silently ignored during
// parsing so the file can carry user notes or future settings.
type File struct {
	// Python is the default interpreter specification (path, command
	// name, or version), used when --python is not given.
	Python string `json:"python,omitempty"`

	// Prompt is the default prompt label for new environments.
	Prompt string `json:"prompt,omitempty"`

	// VirtualenvPy is the default path to an external virtualenv.py
	// script, used as the fallback mechanism.
	VirtualenvPy string `json:"virtualenvPy,omitempty"`

	// SystemSitePackages gives new environments access to the system
	// site-packages by default.
	SystemSitePackages bool `json:"systemSitePackages,omitempty"`

	// SeedPackages overrides the packages upgraded after creation.
	// Empty means the built-in default (setuptools, pip, wheel).
	SeedPackages []string `json:"seedPackages,omitempty"`

	// NoUpgrade disables the post-creation seed-package upgrade.
	NoUpgrade bool `json:"noUpgrade,omitempty"`
}

// LoadFrom reads and parses a specific config file. The file may contain
// JSONC comments and trailing commas; both are stripped before parsing.
func LoadFrom(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapConfigError(err, "cannot read config file %s", path)
	}

	var f File
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, model.WrapConfigError(err, "invalid config file %s", path)
	}
	return &f, nil
}

// Discover returns the path of the first config file found, searching the
// given directory and then the per-user config directory
// (<UserConfigDir>/virtenv/config.jsonc). Returns ok=false when no file
// exists anywhere — which is the common case and not an error.
func Discover(dir string) (string, bool) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, true
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	for _, name := range userConfigNames {
		path := filepath.Join(configDir, "virtenv", name)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// Load discovers and parses the defaults file for the given working
// directory. When no file exists, it returns an empty File so callers can
// merge unconditionally.
func Load(dir string) (*File, error) {
	path, ok := Discover(dir)
	if !ok {
		return &File{}, nil
	}

	f, err := LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	return f, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
