// Package interpreter locates Python interpreters and probes their
// capabilities for the virtenv CLI.
//
// All interpreter operations are performed via os/exec calls to the Python
// binary itself, rather than by inspecting the filesystem layout of a
// Python installation. This approach:
//   - Asks the interpreter directly, so the answers match what the
//     environment builder will actually see at build time
//   - Works across CPython, PyPy, and Windows launchers without
//     special-casing installation layouts
//   - Costs exactly one subprocess per provisioning run — capabilities
//     are resolved once at startup and never re-checked
//
// Resolve turns a user-supplied interpreter specification (absolute path,
// command name, or bare version like "3.11") into an executable path.
// Probe runs that interpreter once and reports its capabilities.
package interpreter
