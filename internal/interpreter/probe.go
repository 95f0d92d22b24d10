package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// probeScript is executed once inside the target interpreter to report its
// capabilities as a single JSON line. It deliberately avoids any syntax or
// stdlib feature newer than Python 2.6, because the whole point of probing
// is that we do not yet know what the target interpreter supports.
//
// The legacy-virtualenv sentinel is sys.real_prefix: only the old
// virtualenv tool sets it, and its presence is the signal that building a
// venv from this interpreter would break (the known nesting hazard).
// PEP 405 venvs set sys.base_prefix instead, which is safe to nest and is
// reported only for information.
const probeScript = `import json, sys

def importable(name):
    try:
        __import__(name)
        return True
    except ImportError:
        return False

caps = {
    "executable": sys.executable,
    "version": "%d.%d.%d" % sys.version_info[:3],
    "venv": importable("venv"),
    "ensurepip": importable("ensurepip"),
    "legacyVirtualenv": hasattr(sys, "real_prefix"),
    "inVenv": getattr(sys, "base_prefix", sys.prefix) != sys.prefix,
}
print(json.dumps(caps))
`

// Probe runs the given interpreter once and returns its observed
// capabilities. The result feeds the mechanism-selection procedure and is
// never refreshed — one probe per provisioning run.
//
// Returns a model.ConfigError if the interpreter cannot be executed or
// produces unparseable output, since a broken interpreter means no
// mechanism can be selected for it.
func Probe(ctx context.Context, python string) (model.Capabilities, error) {
	var caps model.Capabilities

	// #nosec G204 — python is a resolved interpreter path, not raw user input
	cmd := exec.CommandContext(ctx, python, "-c", probeScript)

	// Capture stdout and stderr separately so stderr noise (deprecation
	// warnings, sitecustomize output) cannot corrupt the JSON payload.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = err.Error()
		}
		return caps, model.WrapConfigError(err, "failed to probe interpreter %s: %s", python, message)
	}

	// Some interpreters emit banner lines before our output; the JSON
	// payload is always the last non-empty line.
	payload := lastNonEmptyLine(stdout.String())
	if payload == "" {
		return caps, model.NewConfigError("interpreter %s produced no probe output", python)
	}

	if err := json.Unmarshal([]byte(payload), &caps); err != nil {
		return caps, model.WrapConfigError(err, "unexpected probe output from %s: %q", python, payload)
	}
	return caps, nil
}

// lastNonEmptyLine returns the last line of s that contains non-whitespace
// content, or "" if there is none.
func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
