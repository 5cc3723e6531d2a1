// Package gate enforces the delegate package's declared Node.js version
// requirement before any handoff. The delegate evolves independently of the
// globally installed launcher and may rely on runtime features the user's
// Node.js lacks; running it anyway would fail in ways the launcher cannot
// recover from, so an unsatisfied requirement aborts the whole bootstrap.
package gate
