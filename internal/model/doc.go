// Package model defines the domain types and value objects for the
// virtenv CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Request, Capabilities, Mechanism, Receipt) are transient
// process parameters — nothing here touches the filesystem or spawns
// subprocesses.
//
// The package also defines the error types ConfigError and ProcessError,
// which carry process exit codes (via the ExitCoder interface) so the CLI
// layer can translate failures into the documented exit statuses: 1 for
// configuration errors, the child's own status for subprocess failures.
package model
