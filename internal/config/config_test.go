package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig creates a config file with the given name and content in a
// fresh temp directory, returning the directory.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

// TestLoadFromJSONC verifies that comments and trailing commas are
// accepted, matching the editor-settings style of config file.
func TestLoadFromJSONC(t *testing.T) {
	dir := writeConfig(t, "virtenv.jsonc", `{
	// Default interpreter for new environments.
	"python": "3.11",
	"prompt": "work",
	/* fallback script */
	"virtualenvPy": "/opt/tools/virtualenv.py",
	"systemSitePackages": true,
	"seedPackages": ["pip", "wheel"],
}`)

	f, err := LoadFrom(filepath.Join(dir, "virtenv.jsonc"))
	require.NoError(t, err)

	assert.Equal(t, "3.11", f.Python)
	assert.Equal(t, "work", f.Prompt)
	assert.Equal(t, "/opt/tools/virtualenv.py", f.VirtualenvPy)
	assert.True(t, f.SystemSitePackages)
	assert.Equal(t, []string{"pip", "wheel"}, f.SeedPackages)
	assert.False(t, f.NoUpgrade)
}

// TestLoadFromUnknownFields verifies unknown fields are ignored rather
// than rejected, so the file can carry future settings.
func TestLoadFromUnknownFields(t *testing.T) {
	dir := writeConfig(t, "virtenv.json", `{"python": "3.12", "futureSetting": 42}`)

	f, err := LoadFrom(filepath.Join(dir, "virtenv.json"))
	require.NoError(t, err)
	assert.Equal(t, "3.12", f.Python)
}

// TestLoadFromInvalid verifies that malformed JSON is reported as a
// configuration error.
func TestLoadFromInvalid(t *testing.T) {
	dir := writeConfig(t, "virtenv.json", `{"python": `)

	_, err := LoadFrom(filepath.Join(dir, "virtenv.json"))
	assert.Error(t, err)
}

// TestDiscoverOrder verifies that virtenv.jsonc in the working directory
// wins over virtenv.json.
func TestDiscoverOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "virtenv.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "virtenv.jsonc"), []byte(`{}`), 0o644))

	path, ok := Discover(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "virtenv.jsonc"), path)
}

// TestDiscoverNone verifies that a directory without config files is not
// an error condition. The user config dir is redirected to an empty
// directory so a developer's real config cannot leak into the test.
func TestDiscoverNone(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME redirection only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, ok := Discover(t.TempDir())
	assert.False(t, ok)
}

// TestLoadMissingIsEmpty verifies Load returns an empty File (not an
// error) when no config exists, so callers can merge unconditionally.
func TestLoadMissingIsEmpty(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME redirection only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	f, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

// TestLoadUserConfigDir verifies the per-user fallback location
// <XDG_CONFIG_HOME>/virtenv/config.jsonc.
func TestLoadUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME redirection only applies on Linux")
	}
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	virtenvDir := filepath.Join(configHome, "virtenv")
	require.NoError(t, os.MkdirAll(virtenvDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(virtenvDir, "config.jsonc"),
		[]byte(`{"prompt": "global"}`), 0o644))

	f, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "global", f.Prompt)
}
