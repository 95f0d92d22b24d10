package provision

import "path/filepath"

// envContext is the ephemeral description of an in-progress environment
// build: the layout of the environment being created. It is owned by the
// builder for the duration of one creation call and never persisted.
type envContext struct {
	// EnvDir is the absolute path of the environment root.
	EnvDir string

	// BinDir is the directory holding the environment's executables:
	// <env>/bin on POSIX, <env>\Scripts on Windows.
	BinDir string

	// Executable is the path of the environment's own interpreter.
	Executable string
}

// newEnvContext computes the environment layout for the given platform.
// goos is a parameter (rather than runtime.GOOS read in place) so the
// layout logic is testable across platforms.
func newEnvContext(envDir, goos string) envContext {
	if goos == "windows" {
		binDir := filepath.Join(envDir, "Scripts")
		return envContext{
			EnvDir:     envDir,
			BinDir:     binDir,
			Executable: filepath.Join(binDir, "python.exe"),
		}
	}
	binDir := filepath.Join(envDir, "bin")
	return envContext{
		EnvDir:     envDir,
		BinDir:     binDir,
		Executable: filepath.Join(binDir, "python"),
	}
}
