package provision

import (
	"github.com/mmr-tortoise/virtenv/internal/model"
)

// Select chooses the environment-building mechanism for an interpreter
// with the given capabilities. It is a pure function: the capabilities are
// resolved once by the caller (interpreter.Probe) and no runtime probing
// happens here.
//
// The returned reason is a human-readable explanation of the choice,
// matching the progress lines the tool prints. It is populated even when
// an error is returned, so the caller can still explain why the built-in
// builder was rejected.
//
// Returns a model.ConfigError when the built-in builder is rejected and no
// virtualenv.py path was supplied — there is then no usable mechanism.
func Select(caps model.Capabilities, virtualenvPy string) (model.Mechanism, string, error) {
	mechanism := model.MechanismVenv
	reason := "Using venv"

	switch {
	case !caps.Venv:
		mechanism = model.MechanismVirtualenv
		reason = "venv not available, falling back to virtualenv"
	case !caps.Ensurepip:
		// venv without ensurepip can create the directory tree but not
		// bootstrap pip into it, which leaves an environment nobody can
		// install packages into.
		mechanism = model.MechanismVirtualenv
		reason = "venv without ensurepip is unuseful, falling back to virtualenv"
	case caps.LegacyVirtualenv:
		mechanism = model.MechanismVirtualenv
		reason = "venv breaks when nesting in virtualenv, falling back to virtualenv"
	}

	if mechanism == model.MechanismVirtualenv && virtualenvPy == "" {
		return "", reason, model.NewConfigError("no usable mechanism: virtualenv.py not available")
	}
	return mechanism, reason, nil
}
