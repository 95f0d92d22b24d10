package interpreter

import (
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// defaultCommands are the command names tried, in order, when no
// interpreter specification is given. "python3" is preferred because
// on many systems plain "python" is either absent or Python 2.
var defaultCommands = []string{"python3", "python"}

// versionSpecRegex matches bare version specifications such as "3",
// "3.11", or "3.11.4". These are resolved by looking up the
// conventionally named executable (python3.11 etc.) on PATH.
var versionSpecRegex = regexp.MustCompile(`^\d+(\.\d+)*$`)

// Resolve turns an interpreter specification into an absolute path to an
// executable interpreter.
//
// The specification can be:
//   - empty: the first of "python3", "python" found on PATH is used
//   - a path (absolute, or containing a separator): used as-is after
//     verifying it is executable
//   - a bare version such as "3.11": resolved as "python3.11" on PATH
//     (on Windows, exec.LookPath applies PATHEXT, so "python3.11.exe"
//     is found as well)
//   - a command name such as "pypy3": resolved on PATH
//
// Returns a model.ConfigError when no matching executable exists, since
// an unresolvable interpreter means no provisioning mechanism can run.
func Resolve(spec string) (string, error) {
	if spec == "" {
		return resolveDefault()
	}

	// A spec containing a path separator refers to a concrete file.
	// exec.LookPath handles this case too: for arguments containing a
	// separator it skips the PATH search and just checks executability.
	if filepath.IsAbs(spec) || strings.ContainsAny(spec, `/\`) {
		path, err := exec.LookPath(spec)
		if err != nil {
			return "", model.WrapConfigError(err, "interpreter %q is not an executable file", spec)
		}
		return filepath.Abs(path)
	}

	// A bare version maps to the conventional executable name, e.g.
	// "3.11" → "python3.11". This mirrors how version managers and
	// distro packages name their interpreters.
	if versionSpecRegex.MatchString(spec) {
		path, err := exec.LookPath("python" + spec)
		if err != nil {
			return "", model.WrapConfigError(err, "no interpreter named %q found on PATH for version %q", "python"+spec, spec)
		}
		return filepath.Abs(path)
	}

	// Anything else is a plain command name.
	path, err := exec.LookPath(spec)
	if err != nil {
		return "", model.WrapConfigError(err, "interpreter %q not found on PATH", spec)
	}
	return filepath.Abs(path)
}

// resolveDefault picks the default interpreter from PATH when the user did
// not specify one. Tries python3 first, then python.
func resolveDefault() (string, error) {
	for _, name := range defaultCommands {
		if path, err := exec.LookPath(name); err == nil {
			return filepath.Abs(path)
		}
	}
	return "", model.NewConfigError(
		"no Python interpreter found on PATH (tried %s)", strings.Join(defaultCommands, ", "))
}
