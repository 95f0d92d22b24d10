package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mmr-tortoise/virtenv/internal/interpreter"
	"github.com/mmr-tortoise/virtenv/internal/model"
)

// Provisioner creates isolated Python environments. A zero value is not
// usable; construct with New, then override fields as needed (tests swap
// Stdout/Stderr for buffers, GOOS for the platform under test).
type Provisioner struct {
	// Stdout receives human-readable progress lines (mechanism chosen,
	// new interpreter path, upgrade progress) and the pass-through
	// output of the build subprocesses.
	Stdout io.Writer

	// Stderr receives the pass-through error output of subprocesses.
	Stderr io.Writer

	// Version is recorded in the receipt of every created environment.
	Version string

	// GOOS selects platform-specific behavior (symlink vs copy strategy,
	// environment layout). Defaults to runtime.GOOS.
	GOOS string
}

// New returns a Provisioner writing progress to the process's own
// stdout/stderr.
func New() *Provisioner {
	return &Provisioner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		GOOS:   runtime.GOOS,
	}
}

// Result describes a successfully created environment.
type Result struct {
	// EnvDir is the absolute path of the environment root.
	EnvDir string

	// Executable is the path of the environment's interpreter.
	Executable string

	// Mechanism records which builder was used.
	Mechanism model.Mechanism

	// Capabilities is the capability report of the base interpreter,
	// as probed at the start of the run.
	Capabilities model.Capabilities
}

// Provision creates an isolated environment per the request. This is the
// main entry point for both the CLI and library use.
//
// The sequence is strictly synchronous: resolve the interpreter, probe its
// capabilities once, select a mechanism, build, upgrade seed packages
// (venv path only, non-fatal), write the receipt. Every subprocess is
// awaited to completion before the next step runs.
//
// Error contract: ConfigError for an unusable request or no usable
// mechanism (exit 1); ProcessError when a build subprocess fails (exit
// status mirrored). A failed seed-package upgrade is reported on Stdout
// but does not fail the operation.
func (p *Provisioner) Provision(ctx context.Context, req *model.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	envDir, err := filepath.Abs(req.EnvDir)
	if err != nil {
		return nil, model.WrapConfigError(err, "cannot resolve destination %q", req.EnvDir)
	}

	// Refuse to touch an existing path. The destination is only ever
	// written to by exactly one creation attempt; reusing a directory
	// would silently mix two environments.
	if _, statErr := os.Stat(envDir); statErr == nil {
		return nil, model.NewConfigError("destination %s already exists", envDir)
	}

	python, err := interpreter.Resolve(req.Python)
	if err != nil {
		return nil, err
	}

	caps, err := interpreter.Probe(ctx, python)
	if err != nil {
		return nil, err
	}

	mechanism, reason, selectErr := Select(caps, req.VirtualenvPy)
	if reason != "" {
		fmt.Fprintln(p.Stdout, reason)
	}
	if selectErr != nil {
		return nil, selectErr
	}

	env := newEnvContext(envDir, p.GOOS)

	switch mechanism {
	case model.MechanismVenv:
		if err := p.createVenv(ctx, python, req, envDir); err != nil {
			return nil, err
		}
		fmt.Fprintln(p.Stdout, "New Python executable in", env.Executable)

		if !req.SkipUpgrade {
			// Non-fatal: the environment is usable even when the
			// upgrade fails, so the error is dropped after the
			// progress line has reported the outcome.
			_ = p.upgradeSeedPackages(ctx, env, req.SeedPackages)
		}

	case model.MechanismVirtualenv:
		if err := p.createVirtualenv(ctx, python, req, envDir); err != nil {
			return nil, err
		}
	}

	receipt := &model.Receipt{
		Prompt:             req.Prompt,
		Python:             python,
		PythonVersion:      caps.Version,
		Mechanism:          mechanism,
		SystemSitePackages: req.SystemSitePackages,
		CreatedAt:          time.Now().UTC(),
		CreatedBy:          p.Version,
	}
	if err := WriteReceipt(envDir, receipt); err != nil {
		return nil, err
	}

	return &Result{
		EnvDir:       envDir,
		Executable:   env.Executable,
		Mechanism:    mechanism,
		Capabilities: caps,
	}, nil
}

// run executes a subprocess with the provisioner's output streams attached
// and the given context for cancellation. On a non-zero exit it returns a
// ProcessError carrying the child's exit status; on a start failure the
// ProcessError has no status and maps to exit 1.
func (p *Provisioner) run(ctx context.Context, program string, args ...string) error {
	// #nosec G204 — program is a resolved interpreter path, args are built internally
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		procErr := &model.ProcessError{
			Command: commandLine(program, args),
			Err:     err,
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			procErr.Code = exitErr.ExitCode()
		}
		return procErr
	}
	return nil
}

// commandLine renders a program and its arguments for error messages.
func commandLine(program string, args []string) string {
	return strings.Join(append([]string{program}, args...), " ")
}
