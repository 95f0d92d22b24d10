// Package cli — info.go implements the "virtenv info" command.
//
// The info command describes a single existing environment. It prefers
// the virtenv.yaml receipt written at creation time; for environments
// created by other tools it falls back to the pyvenv.cfg file that venv
// (and modern virtualenv) write into every environment.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/virtenv/internal/model"
	"github.com/mmr-tortoise/virtenv/internal/provision"
)

// NewInfoCommand creates the "info" cobra command.
func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <env-dir>",
		Short: "Show how an environment was created",
		Long: `Show creation metadata for a single virtual environment.

For environments created by virtenv, the virtenv.yaml receipt is shown:
interpreter, mechanism, prompt, and creation time. For other environments,
the pyvenv.cfg contents are shown instead.

Examples:
  virtenv info .venv
  virtenv info --json ~/envs/scratch`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}

	return cmd
}

// runInfo loads and prints the environment's creation metadata.
func runInfo(envDir string) error {
	envDir, err := filepath.Abs(envDir)
	if err != nil {
		return model.WrapConfigError(err, "cannot resolve %q", envDir)
	}
	if info, statErr := os.Stat(envDir); statErr != nil || !info.IsDir() {
		return model.NewConfigError("%s is not an environment directory", envDir)
	}

	receipt, err := provision.ReadReceipt(envDir)
	if err == nil {
		printReceipt(envDir, receipt)
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return model.WrapConfigError(err, "unreadable receipt in %s", envDir)
	}

	// No receipt — the environment was not created by virtenv.
	// pyvenv.cfg still tells us the base interpreter and version.
	VerboseLog("No virtenv receipt in %s, falling back to pyvenv.cfg", envDir)
	values, cfgErr := provision.ReadPyvenvCfg(envDir)
	if cfgErr != nil {
		return model.WrapConfigError(cfgErr, "%s does not look like a virtual environment", envDir)
	}
	printPyvenvCfg(envDir, values)
	return nil
}

// printReceipt outputs a virtenv receipt in text or JSON format.
func printReceipt(envDir string, receipt *model.Receipt) {
	if IsJSONOutput() {
		type receiptJSON struct {
			EnvDir             string `json:"envDir"`
			Prompt             string `json:"prompt,omitempty"`
			Python             string `json:"python"`
			PythonVersion      string `json:"pythonVersion,omitempty"`
			Mechanism          string `json:"mechanism"`
			SystemSitePackages bool   `json:"systemSitePackages"`
			CreatedAt          string `json:"createdAt"`
			CreatedBy          string `json:"createdBy,omitempty"`
		}
		out := receiptJSON{
			EnvDir:             envDir,
			Prompt:             receipt.Prompt,
			Python:             receipt.Python,
			PythonVersion:      receipt.PythonVersion,
			Mechanism:          receipt.Mechanism.String(),
			SystemSitePackages: receipt.SystemSitePackages,
			CreatedAt:          receipt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			CreatedBy:          receipt.CreatedBy,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Environment %s\n", envDir)
	fmt.Printf("  Python:     %s", receipt.Python)
	if receipt.PythonVersion != "" {
		fmt.Printf(" (%s)", receipt.PythonVersion)
	}
	fmt.Println()
	fmt.Printf("  Mechanism:  %s\n", receipt.Mechanism)
	if receipt.Prompt != "" {
		fmt.Printf("  Prompt:     %s\n", receipt.Prompt)
	}
	fmt.Printf("  System site-packages: %s\n", formatBool(receipt.SystemSitePackages))
	fmt.Printf("  Created:    %s", receipt.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
	if receipt.CreatedBy != "" {
		fmt.Printf(" by virtenv %s", receipt.CreatedBy)
	}
	fmt.Println()
}

// printPyvenvCfg outputs the fallback pyvenv.cfg metadata, sorted by key
// for deterministic output.
func printPyvenvCfg(envDir string, values map[string]string) {
	if IsJSONOutput() {
		out := map[string]interface{}{
			"envDir":    envDir,
			"pyvenvCfg": values,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Environment %s (no virtenv receipt, from pyvenv.cfg)\n", envDir)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %s\n", k, values[k])
	}
}
