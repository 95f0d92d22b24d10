package provision

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// ReceiptFileName is the name of the creation-metadata file written into
// the root of every environment virtenv creates.
const ReceiptFileName = "virtenv.yaml"

// receiptHeader is prepended to the serialized receipt. YAML comments
// survive round-trips through tools that merely read the file.
const receiptHeader = "# Created by virtenv. Records how this environment was provisioned.\n"

// WriteReceipt serializes the receipt as YAML into <envDir>/virtenv.yaml.
func WriteReceipt(envDir string, receipt *model.Receipt) error {
	data, err := yaml.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to serialize receipt: %w", err)
	}

	path := filepath.Join(envDir, ReceiptFileName)
	if err := os.WriteFile(path, append([]byte(receiptHeader), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write receipt %s: %w", path, err)
	}
	return nil
}

// ReadReceipt loads the receipt from <envDir>/virtenv.yaml.
// The error wraps os.ErrNotExist when the file is absent, so callers can
// fall back to pyvenv.cfg via errors.Is.
func ReadReceipt(envDir string) (*model.Receipt, error) {
	path := filepath.Join(envDir, ReceiptFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt %s: %w", path, err)
	}

	var receipt model.Receipt
	if err := yaml.Unmarshal(data, &receipt); err != nil {
		return nil, fmt.Errorf("failed to parse receipt %s: %w", path, err)
	}
	return &receipt, nil
}

// ReadPyvenvCfg parses the pyvenv.cfg file that `python -m venv` (and
// recent virtualenv versions) write into every environment. The format is
// a flat sequence of "key = value" lines.
//
// This is the fallback source of environment metadata for environments
// that were not created by virtenv and therefore carry no receipt.
func ReadPyvenvCfg(envDir string) (map[string]string, error) {
	path := filepath.Join(envDir, "pyvenv.cfg")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	values := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return values, nil
}
