package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mintapp-labs/mintapp/internal/branding"
)

// Installer runs the package manager to fetch the delegate package into a
// project directory.
type Installer struct {
	// Bin is the package-manager executable. Defaults to "npm".
	Bin string

	// Package is the package identifier to install. Defaults to the
	// branded delegate package name.
	Package string

	// Stdout, Stderr, and Stdin can be set for testing; they default to
	// the process streams so the user sees live install progress.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// Outcome records the result of one install run.
type Outcome struct {
	// ExitCode is the package manager's exit status. Zero means success.
	ExitCode int

	// InstalledPackagePath is where the delegate package lands on success
	// (<dir>/node_modules/<package>).
	InstalledPackagePath string

	// Command is the exact command line that was invoked, for diagnostics.
	Command string
}

// Install runs `<bin> install [--verbose] --save-dev --save-exact <package>`
// in the given project directory, blocking until the child process exits. A
// non-zero exit status is reported in the Outcome rather than as an error;
// the error return covers failures to start the process at all. No timeout
// is imposed: a slow registry can block indefinitely, by contract.
func (i *Installer) Install(ctx context.Context, dir string, verbose bool) (*Outcome, error) {
	bin := i.Bin
	if bin == "" {
		bin = "npm"
	}
	pkg := i.Package
	if pkg == "" {
		pkg = branding.DelegatePackage()
	}

	args := []string{"install"}
	if verbose {
		args = append(args, "--verbose")
	}
	args = append(args, "--save-dev", "--save-exact", pkg)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	cmd.Stdout = i.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = i.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = i.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	outcome := &Outcome{
		InstalledPackagePath: filepath.Join(dir, "node_modules", packageDir(pkg)),
		Command:              bin + " " + strings.Join(args, " "),
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}
		return nil, fmt.Errorf("running %q: %w", outcome.Command, err)
	}

	return outcome, nil
}

// packageDir maps a package identifier to its directory name under
// node_modules, stripping any version suffix ("pkg@1.2.3" → "pkg",
// "@scope/pkg@1.2.3" → "@scope/pkg").
func packageDir(pkg string) string {
	if at := strings.LastIndex(pkg, "@"); at > 0 {
		return pkg[:at]
	}
	return pkg
}

// ManifestPath returns the path of the installed delegate's package.json.
func (o *Outcome) ManifestPath() string {
	return filepath.Join(o.InstalledPackagePath, "package.json")
}
