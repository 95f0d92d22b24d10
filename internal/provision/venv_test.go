package provision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// TestBuildVenvArgs verifies the argument list handed to `python -m venv`
// across platforms and flag combinations. The destination directory must
// always be the final argument.
func TestBuildVenvArgs(t *testing.T) {
	tests := []struct {
		name string
		req  model.Request
		goos string
		want []string
	}{
		{
			name: "defaults on linux use symlinks",
			req:  model.Request{},
			goos: "linux",
			want: []string{"-m", "venv", "--symlinks", "/tmp/env"},
		},
		{
			name: "defaults on darwin use symlinks",
			req:  model.Request{},
			goos: "darwin",
			want: []string{"-m", "venv", "--symlinks", "/tmp/env"},
		},
		{
			name: "windows uses copies",
			req:  model.Request{},
			goos: "windows",
			want: []string{"-m", "venv", "--copies", "/tmp/env"},
		},
		{
			name: "system site packages flag passes through",
			req:  model.Request{SystemSitePackages: true},
			goos: "linux",
			want: []string{"-m", "venv", "--system-site-packages", "--symlinks", "/tmp/env"},
		},
		{
			name: "prompt label passes through",
			req:  model.Request{Prompt: "myproj"},
			goos: "linux",
			want: []string{"-m", "venv", "--symlinks", "--prompt", "myproj", "/tmp/env"},
		},
		{
			name: "all options combined",
			req:  model.Request{SystemSitePackages: true, Prompt: "myproj"},
			goos: "windows",
			want: []string{"-m", "venv", "--system-site-packages", "--copies", "--prompt", "myproj", "/tmp/env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildVenvArgs(&tt.req, "/tmp/env", tt.goos)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBuildUpgradeArgs verifies the pip invocation used for the seed
// upgrade: quiet, version-check disabled, packages last.
func TestBuildUpgradeArgs(t *testing.T) {
	got := buildUpgradeArgs([]string{"setuptools", "pip", "wheel"})
	want := []string{
		"-m", "pip", "install",
		"--upgrade", "--disable-pip-version-check", "--quiet",
		"setuptools", "pip", "wheel",
	}
	assert.Equal(t, want, got)
}

// TestEnvContextLayout verifies the per-platform environment layout used
// to locate the new interpreter after a build.
func TestEnvContextLayout(t *testing.T) {
	posix := newEnvContext("/tmp/env", "linux")
	assert.Equal(t, "/tmp/env/bin", posix.BinDir)
	assert.Equal(t, "/tmp/env/bin/python", posix.Executable)

	// filepath.Join uses the host separator, so compare components
	// rather than a literal Windows path string.
	windows := newEnvContext("/tmp/env", "windows")
	assert.Contains(t, windows.BinDir, "Scripts")
	assert.Contains(t, windows.Executable, "python.exe")
}
