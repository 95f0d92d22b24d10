package provision

import (
	"context"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// buildVirtualenvArgs constructs the argument list for invoking an
// external virtualenv.py script: the script path, the destination, and the
// pass-through options for system-site-packages and the prompt label.
func buildVirtualenvArgs(req *model.Request, envDir string) []string {
	args := []string{req.VirtualenvPy, envDir}

	if req.SystemSitePackages {
		args = append(args, "--system-site-packages")
	}
	if req.Prompt != "" {
		args = append(args, "--prompt", req.Prompt)
	}

	return args
}

// createVirtualenv builds the environment by running the external
// virtualenv.py script under the target interpreter.
//
// Unlike the seed-package upgrade, a non-zero exit here is a hard failure:
// the environment build itself did not complete, so the ProcessError (with
// the child's exit status) propagates to the caller.
func (p *Provisioner) createVirtualenv(ctx context.Context, python string, req *model.Request, envDir string) error {
	if req.VirtualenvPy == "" {
		// Select guards this in Provision; library callers can still
		// reach here directly.
		return model.NewConfigError("virtualenv.py not available")
	}
	return p.run(ctx, python, buildVirtualenvArgs(req, envDir)...)
}
