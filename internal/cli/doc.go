// Package cli defines the Cobra command tree for the launcher. The root
// command runs the bootstrap wizard; the only other command is version.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O wiring, and exit-code mapping.
package cli
