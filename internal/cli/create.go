// Package cli — create.go implements the "virtenv create" command.
//
// The create command is the primary user-facing operation. It merges flag
// values with config-file defaults, hands the resulting request to the
// provisioner, and reports the created environment.
//
// Orchestration steps:
//  1. Load optional defaults (virtenv.jsonc) and merge them under flags
//  2. Resolve the target interpreter and probe its capabilities (once)
//  3. Select the mechanism: built-in venv or external virtualenv.py
//  4. Build the environment and upgrade its packaging tools
//  5. Output results (text or JSON)
//
// Steps 2-4 live in internal/provision; this file only wires them up.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/virtenv/internal/config"
	"github.com/mmr-tortoise/virtenv/internal/model"
	"github.com/mmr-tortoise/virtenv/internal/provision"
)

// createFlags holds the flag values for the create command.
// These are bound to cobra flags in NewCreateCommand.
type createFlags struct {
	python       string // --python: interpreter path, command name, or version
	prompt       string // --prompt: prompt label for activation scripts
	virtualenvPy string // --virtualenv.py: external fallback script
	systemSite   bool   // --system-site-packages
	system       bool   // --system: short alias kept for script compatibility
	noUpgrade    bool   // --no-upgrade: skip the seed-package upgrade
}

// NewCreateCommand creates the "create" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCreateCommand() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create <env-dir>",
		Short: "Create a virtual environment with venv or virtualenv",
		Long: `Create an isolated Python environment at the given directory.

The interpreter is probed once; if its built-in venv module is usable it
is preferred, otherwise the external virtualenv.py script (if supplied)
is invoked as a fallback. After a venv build, setuptools, pip, and wheel
are upgraded inside the new environment; a failure at that step leaves
the environment usable and does not fail the command.

Examples:
  virtenv create .venv
  virtenv create --python 3.11 --prompt myproj .venv
  virtenv create --python /opt/pypy/bin/pypy3 ~/envs/scratch
  virtenv create --virtualenv.py /opt/tools/virtualenv.py legacy-env`,

		// Exactly one positional argument: the destination directory.
		Args: cobra.ExactArgs(1),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.python, "python", "",
		"Python to use: a version (\"3.11\"), command, or path to the executable (default: python3 on PATH)")
	cmd.Flags().StringVar(&flags.prompt, "prompt", "",
		"Alternative prompt prefix for this environment")
	cmd.Flags().StringVar(&flags.virtualenvPy, "virtualenv.py", "",
		"Path to a virtualenv.py script, used when the built-in venv builder is unusable")
	cmd.Flags().BoolVar(&flags.systemSite, "system-site-packages", false,
		"Give the environment access to the system site-packages")
	cmd.Flags().BoolVar(&flags.system, "system", false,
		"Alias for --system-site-packages")
	cmd.Flags().BoolVar(&flags.noUpgrade, "no-upgrade", false,
		"Skip upgrading setuptools, pip, and wheel after creation")

	return cmd
}

// runCreate is the main orchestration function for the create command.
func runCreate(ctx context.Context, envDir string, flags *createFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapConfigError(err, "failed to get current directory")
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	req := mergeRequest(envDir, flags, cfg)

	VerboseLog("Destination: %s", req.EnvDir)
	if req.Python != "" {
		VerboseLog("Interpreter spec: %s", req.Python)
	}
	if req.VirtualenvPy != "" {
		VerboseLog("virtualenv.py fallback: %s", req.VirtualenvPy)
	}

	p := provision.New()
	p.Version = Version

	result, err := p.Provision(ctx, req)
	if err != nil {
		return err
	}

	printCreateResult(result)
	return nil
}

// mergeRequest combines flag values with config-file defaults into a
// provisioning request. Flags win: a config value applies only when the
// corresponding flag was left at its zero value.
func mergeRequest(envDir string, flags *createFlags, cfg *config.File) *model.Request {
	req := &model.Request{
		EnvDir:             envDir,
		Python:             flags.python,
		Prompt:             flags.prompt,
		VirtualenvPy:       flags.virtualenvPy,
		SystemSitePackages: flags.systemSite || flags.system,
		SkipUpgrade:        flags.noUpgrade,
		SeedPackages:       cfg.SeedPackages,
	}

	if req.Python == "" {
		req.Python = cfg.Python
	}
	if req.Prompt == "" {
		req.Prompt = cfg.Prompt
	}
	if req.VirtualenvPy == "" {
		req.VirtualenvPy = cfg.VirtualenvPy
	}
	if cfg.SystemSitePackages {
		req.SystemSitePackages = true
	}
	if cfg.NoUpgrade {
		req.SkipUpgrade = true
	}
	return req
}

// printCreateResult outputs the create command results in text or JSON
// format.
func printCreateResult(result *provision.Result) {
	if IsJSONOutput() {
		printCreateResultJSON(result)
	} else {
		printCreateResultText(result)
	}
}

// printCreateResultJSON outputs the create result as structured JSON.
func printCreateResultJSON(result *provision.Result) {
	type resultJSON struct {
		EnvDir        string `json:"envDir"`
		Executable    string `json:"executable"`
		Mechanism     string `json:"mechanism"`
		Python        string `json:"python"`
		PythonVersion string `json:"pythonVersion"`
	}

	out := resultJSON{
		EnvDir:        result.EnvDir,
		Executable:    result.Executable,
		Mechanism:     result.Mechanism.String(),
		Python:        result.Capabilities.Executable,
		PythonVersion: result.Capabilities.Version,
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printCreateResultText outputs the create result as human-readable text.
func printCreateResultText(result *provision.Result) {
	fmt.Printf("Created environment at %s\n", result.EnvDir)
	fmt.Printf("  Interpreter: %s\n", result.Executable)
	fmt.Printf("  Mechanism:   %s\n", result.Mechanism)
}
