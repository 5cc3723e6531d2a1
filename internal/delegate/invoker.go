package delegate

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/mintapp-labs/mintapp/internal/branding"
)

// LoadError reports a delegate entry point that could not be located. There
// is no fallback scaffolding in the launcher, so this is fatal.
type LoadError struct {
	EntryPoint string
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("delegate entry point not found at %s: %v", e.EntryPoint, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ExitError carries the delegate's non-zero exit code back to the launcher,
// which adopts it as its own.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("delegate exited with status %d", e.Code)
}

// Invoker runs the delegate package's init entry point.
type Invoker struct {
	// NodeBin is the Node.js executable. Resolved from PATH when empty.
	NodeBin string

	// Package overrides the delegate package name; defaults to branding.
	Package string

	// Stdout, Stderr, and Stdin can be set for testing; they default to
	// the process streams. The delegate owns all output after handoff.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// EntryPoint resolves the delegate's init script under the project root by
// the fixed <root>/node_modules/<package>/<entry> convention.
func (v *Invoker) EntryPoint(root string) string {
	pkg := v.Package
	if pkg == "" {
		pkg = branding.DelegatePackage()
	}
	return filepath.Join(root, "node_modules", pkg, filepath.FromSlash(branding.DelegateEntry()))
}

// Invoke locates the delegate's init script and executes it with
// (root, appName, verbose, originalDir) as arguments, blocking until it
// exits. On success the launcher has nothing left to do; a non-zero delegate
// exit surfaces as *ExitError so the caller can adopt the code.
func (v *Invoker) Invoke(ctx context.Context, root, appName string, verbose bool, originalDir string) error {
	entry := v.EntryPoint(root)
	if _, err := os.Stat(entry); err != nil {
		return &LoadError{EntryPoint: entry, Err: err}
	}

	nodeBin := v.NodeBin
	if nodeBin == "" {
		bin, err := exec.LookPath("node")
		if err != nil {
			return fmt.Errorf("delegate scripts require Node.js: %w", err)
		}
		nodeBin = bin
	}

	cmd := exec.CommandContext(ctx, nodeBin, entry, root, appName, strconv.FormatBool(verbose), originalDir)
	cmd.Dir = root

	cmd.Stdout = v.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = v.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = v.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("executing delegate init script: %w", err)
	}
	return nil
}
