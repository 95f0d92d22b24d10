// Package model defines the domain types for the virtenv CLI.
//
// All entities in this package are transient process parameters: a Request
// is constructed from command-line input (plus config-file defaults),
// consumed by exactly one provisioning attempt, and discarded. No state is
// persisted beyond the receipt file written into the created environment.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Mechanism identifies which of the two environment-building mechanisms
// is used to create an isolated environment.
//
// Selection logic (see provision.Select):
//   - venv module importable + ensurepip importable + not inside a
//     legacy-virtualenv environment → MechanismVenv
//   - otherwise → MechanismVirtualenv (requires a virtualenv.py script)
type Mechanism string

const (
	// MechanismVenv uses the interpreter's built-in venv module
	// (`python -m venv`), with pip bootstrapped via ensurepip.
	MechanismVenv Mechanism = "venv"

	// MechanismVirtualenv invokes an external virtualenv.py script as a
	// subprocess. This is the fallback for interpreters whose venv module
	// is missing, lacks ensurepip, or would break when nested inside an
	// environment that virtualenv itself created.
	MechanismVirtualenv Mechanism = "virtualenv"
)

// String returns the string representation of Mechanism.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands.
func (m Mechanism) String() string {
	return string(m)
}

// IsValid checks whether the Mechanism value is one of the
// predefined valid mechanisms.
func (m Mechanism) IsValid() bool {
	switch m {
	case MechanismVenv, MechanismVirtualenv:
		return true
	default:
		return false
	}
}

// ParseMechanism converts a string to a Mechanism.
// Returns an error if the string does not match any valid mechanism.
func ParseMechanism(s string) (Mechanism, error) {
	mechanism := Mechanism(strings.ToLower(s))
	if !mechanism.IsValid() {
		return "", fmt.Errorf("invalid mechanism: %q (valid: venv, virtualenv)", s)
	}
	return mechanism, nil
}

// Capabilities describes what a specific Python interpreter can do, as
// observed by running it once at startup. The provisioner probes the target
// interpreter a single time and passes the resulting flags into the pure
// mechanism-selection procedure — no capability is re-checked later.
type Capabilities struct {
	// Executable is the interpreter's own idea of its path (sys.executable).
	// This may differ from the path used to invoke it (e.g., symlinks).
	Executable string `json:"executable"`

	// Version is the interpreter version in "major.minor.micro" form.
	Version string `json:"version"`

	// Venv reports whether the venv module is importable.
	Venv bool `json:"venv"`

	// Ensurepip reports whether the ensurepip module is importable.
	// A venv module without ensurepip cannot bootstrap pip into the new
	// environment, which makes the built-in builder unusable for us.
	Ensurepip bool `json:"ensurepip"`

	// LegacyVirtualenv reports whether the interpreter is itself running
	// inside an environment created by the legacy virtualenv tool
	// (detected via the sys.real_prefix sentinel attribute). Building a
	// venv from inside such an environment is a known breakage, so the
	// built-in builder must not be used when this flag is set.
	LegacyVirtualenv bool `json:"legacyVirtualenv"`

	// InVenv reports whether the interpreter runs inside a PEP 405 venv
	// (sys.base_prefix != sys.prefix). Informational only — nesting venvs
	// inside venvs is safe and does not affect mechanism selection.
	InVenv bool `json:"inVenv"`
}

// Request holds the parameters for one environment-creation attempt.
// It is built from CLI flags merged with config-file defaults, handed to
// the provisioner once, and never reused.
type Request struct {
	// Python is the interpreter to build the environment with. May be an
	// absolute path, a command name, or empty (the provisioner then picks
	// the default interpreter from PATH).
	Python string

	// EnvDir is the destination directory for the new environment.
	// It must not already exist; exactly one creation attempt may write
	// to it at a time (caller responsibility, not enforced).
	EnvDir string

	// SystemSitePackages gives the new environment access to the
	// interpreter's system-wide site-packages directory.
	SystemSitePackages bool

	// Prompt is an alternative prompt prefix for the environment's
	// activation scripts. Empty means the builder's default (the
	// directory name).
	Prompt string

	// VirtualenvPy is the path to an external virtualenv.py script.
	// Required only when the built-in venv builder is rejected.
	VirtualenvPy string

	// SkipUpgrade disables the post-creation upgrade of setuptools, pip,
	// and wheel inside the new environment.
	SkipUpgrade bool

	// SeedPackages overrides the set of packages upgraded after creation.
	// Empty means the default: setuptools, pip, wheel.
	SeedPackages []string
}

// Validate checks the Request for statically verifiable problems.
// Filesystem checks (destination already exists, interpreter missing)
// are performed by the provisioner, not here.
func (r *Request) Validate() error {
	if r.EnvDir == "" {
		return NewConfigError("environment directory must not be empty")
	}
	return nil
}

// Receipt records how an environment was created. It is serialized as YAML
// into a virtenv.yaml file at the environment root and read back by the
// `virtenv info` command. One environment, one receipt — this is metadata
// about a single environment, not an environment registry.
type Receipt struct {
	// Prompt is the prompt label the environment was created with, if any.
	Prompt string `yaml:"prompt,omitempty"`

	// Python is the path of the interpreter the environment was built
	// from (the base interpreter, not the environment's own executable).
	Python string `yaml:"python"`

	// PythonVersion is the base interpreter's version.
	PythonVersion string `yaml:"pythonVersion,omitempty"`

	// Mechanism records which builder produced the environment.
	Mechanism Mechanism `yaml:"mechanism"`

	// SystemSitePackages records whether the environment was given access
	// to the system site-packages.
	SystemSitePackages bool `yaml:"systemSitePackages"`

	// CreatedAt is the creation timestamp in UTC.
	CreatedAt time.Time `yaml:"createdAt"`

	// CreatedBy is the virtenv version that created the environment.
	CreatedBy string `yaml:"createdBy,omitempty"`
}
