// Package bootstrap sequences the whole launcher flow: intro banner, answer
// collection, validation, project initialization, delegate install, version
// gate, and the final handoff. The flow is strictly linear: every failure
// is terminal for the process, no state is revisited, and nothing retries.
// This package is also the only place that converts a failure into an exit
// code and user-facing diagnostic.
package bootstrap
