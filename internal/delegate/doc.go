// Package delegate hands control to the installed delegate package. The
// handoff is a process boundary: the delegate's init script runs as a Node.js
// child process with inherited stdio and its exit code becomes the
// launcher's. Once invoked, the delegate owns all scaffolding behavior;
// there is no fallback path in the launcher.
package delegate
