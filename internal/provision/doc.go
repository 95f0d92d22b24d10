// Package provision creates isolated Python environments for the
// virtenv CLI.
//
// The package implements the one meaningful decision procedure of the
// tool: given the capabilities of a target interpreter (probed once, see
// package interpreter), choose between the interpreter's built-in venv
// module and an external virtualenv.py script, then build the environment
// and upgrade its core packaging tools.
//
// Selection order (Select):
//  1. venv module unavailable → virtualenv
//  2. venv available but ensurepip unavailable → virtualenv (a builder
//     that cannot bootstrap pip is considered unusable)
//  3. interpreter already inside a legacy-virtualenv environment →
//     virtualenv (nesting venv inside virtualenv is a known breakage)
//  4. otherwise → venv
//
// If virtualenv is selected and no virtualenv.py path was supplied, the
// operation fails with a ConfigError ("no usable mechanism", exit 1).
//
// All building happens by invoking the target interpreter as a subprocess
// (`python -m venv …`, `python virtualenv.py …`), synchronously and
// awaited to completion. The post-creation upgrade of setuptools, pip, and
// wheel is the sole non-fatal step: its failure is reported but the
// environment is left usable and the operation still succeeds.
package provision
