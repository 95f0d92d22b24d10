// Package cli — probe.go implements the "virtenv probe" command.
//
// The probe command reports what the capability probe would feed into
// mechanism selection, without creating anything. It exists for
// diagnostics: when create picks an unexpected mechanism (or refuses to
// run), probe shows exactly which capability flag is responsible.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/virtenv/internal/interpreter"
	"github.com/mmr-tortoise/virtenv/internal/model"
	"github.com/mmr-tortoise/virtenv/internal/provision"
)

// probeFlags holds the flag values for the probe command.
type probeFlags struct {
	python       string // --python: interpreter specification
	virtualenvPy string // --virtualenv.py: fallback script considered in selection
}

// NewProbeCommand creates the "probe" cobra command.
func NewProbeCommand() *cobra.Command {
	flags := &probeFlags{}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Show an interpreter's capabilities and the mechanism that would be used",
		Long: `Probe a Python interpreter and report the capability flags that drive
mechanism selection: whether venv and ensurepip are importable and whether
the interpreter is running inside a legacy virtualenv environment.

Examples:
  virtenv probe
  virtenv probe --python 3.11
  virtenv probe --python /usr/bin/python3 --virtualenv.py /opt/tools/virtualenv.py`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.python, "python", "",
		"Python to probe: a version, command, or path (default: python3 on PATH)")
	cmd.Flags().StringVar(&flags.virtualenvPy, "virtualenv.py", "",
		"Path to a virtualenv.py script to consider during selection")

	return cmd
}

// runProbe resolves and probes the interpreter, then reports the
// capability flags and the resulting mechanism choice.
//
// A "no usable mechanism" outcome is reported in the output AND returned
// as the command's error, so scripts can rely on the exit status the same
// way they do with create.
func runProbe(ctx context.Context, flags *probeFlags) error {
	python, err := interpreter.Resolve(flags.python)
	if err != nil {
		return err
	}
	VerboseLog("Resolved interpreter: %s", python)

	caps, err := interpreter.Probe(ctx, python)
	if err != nil {
		return err
	}

	mechanism, reason, selectErr := provision.Select(caps, flags.virtualenvPy)

	if IsJSONOutput() {
		printProbeJSON(python, caps, mechanism, reason)
	} else {
		printProbeText(python, caps, mechanism, reason)
	}
	return selectErr
}

// printProbeJSON outputs the probe report as structured JSON.
func printProbeJSON(python string, caps model.Capabilities, mechanism model.Mechanism, reason string) {
	type probeJSON struct {
		Python       string             `json:"python"`
		Capabilities model.Capabilities `json:"capabilities"`
		Mechanism    string             `json:"mechanism,omitempty"`
		Reason       string             `json:"reason"`
	}

	out := probeJSON{
		Python:       python,
		Capabilities: caps,
		Mechanism:    mechanism.String(),
		Reason:       reason,
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printProbeText outputs the probe report as human-readable text.
func printProbeText(python string, caps model.Capabilities, mechanism model.Mechanism, reason string) {
	fmt.Printf("Interpreter:        %s (%s)\n", python, caps.Version)
	fmt.Printf("  venv module:      %s\n", formatBool(caps.Venv))
	fmt.Printf("  ensurepip module: %s\n", formatBool(caps.Ensurepip))
	fmt.Printf("  legacy virtualenv: %s\n", formatBool(caps.LegacyVirtualenv))
	fmt.Printf("  inside venv:      %s\n", formatBool(caps.InVenv))

	if mechanism.IsValid() {
		fmt.Printf("Mechanism:          %s (%s)\n", mechanism, reason)
	} else {
		fmt.Printf("Mechanism:          none (%s)\n", reason)
	}
}

// formatBool renders a capability flag for text output.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
