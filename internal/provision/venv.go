package provision

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// defaultSeedPackages are the packaging tools upgraded inside every new
// environment after creation, unless the request overrides them.
var defaultSeedPackages = []string{"setuptools", "pip", "wheel"}

// buildVenvArgs constructs the argument list for `python -m venv`.
//
// The strategy flags mirror what venv itself would pick: symbolic links to
// the base interpreter on POSIX systems, copies on Windows (where symlink
// creation commonly requires elevated privileges). pip bootstrap is on by
// default for `python -m venv`, so no flag is needed for it.
//
// goos is a parameter so the platform branch is testable.
func buildVenvArgs(req *model.Request, envDir, goos string) []string {
	args := []string{"-m", "venv"}

	if req.SystemSitePackages {
		args = append(args, "--system-site-packages")
	}

	if goos == "windows" {
		args = append(args, "--copies")
	} else {
		args = append(args, "--symlinks")
	}

	if req.Prompt != "" {
		args = append(args, "--prompt", req.Prompt)
	}

	return append(args, envDir)
}

// createVenv builds the environment with the interpreter's built-in venv
// module. The builder's own output streams through to the provisioner's
// stdout/stderr. A non-zero exit is fatal and mirrored to the caller.
func (p *Provisioner) createVenv(ctx context.Context, python string, req *model.Request, envDir string) error {
	args := buildVenvArgs(req, envDir, p.GOOS)
	return p.run(ctx, python, args...)
}

// buildUpgradeArgs constructs the pip invocation that upgrades the seed
// packages inside the new environment. --disable-pip-version-check and
// --quiet keep the output down to pip's own error reporting.
func buildUpgradeArgs(packages []string) []string {
	args := []string{"-m", "pip", "install",
		"--upgrade", "--disable-pip-version-check", "--quiet"}
	return append(args, packages...)
}

// upgradeSeedPackages runs the new environment's interpreter to upgrade
// its packaging tools to the latest versions.
//
// The caller treats a failure here as NON-fatal: the base environment is
// already usable, and pip has already printed its own error output. This
// method only reports the outcome; it never deletes or rolls back the
// environment.
func (p *Provisioner) upgradeSeedPackages(ctx context.Context, env envContext, packages []string) error {
	if len(packages) == 0 {
		packages = defaultSeedPackages
	}

	fmt.Fprintf(p.Stdout, "Ensuring up-to-date %s...", strings.Join(packages, ", "))

	err := p.run(ctx, env.Executable, buildUpgradeArgs(packages)...)
	if err != nil {
		// pip has already written a useful error to stderr; just end
		// the progress line and carry on.
		fmt.Fprintln(p.Stdout)
		return err
	}

	fmt.Fprintln(p.Stdout, "done")
	return nil
}
