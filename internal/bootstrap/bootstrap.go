package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mintapp-labs/mintapp/internal/branding"
	"github.com/mintapp-labs/mintapp/internal/delegate"
	"github.com/mintapp-labs/mintapp/internal/gate"
	"github.com/mintapp-labs/mintapp/internal/installer"
	"github.com/mintapp-labs/mintapp/internal/project"
	"github.com/mintapp-labs/mintapp/internal/prompt"
)

// ExitError carries the process exit code for a terminal failure, plus the
// diagnostic already formatted for the user.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Runner owns one bootstrap flow. Collaborators are function fields so tests
// can substitute any stage; New wires the real implementations.
type Runner struct {
	// BaseDir is the directory the launcher was invoked from. The project
	// directory is resolved relative to it, and the delegate receives it
	// as the originalDirectory argument.
	BaseDir string

	// Verbose is forwarded to the installer and the delegate.
	Verbose bool

	// Version is the launcher version shown in the intro banner.
	Version string

	// Out receives all user-facing output from the flow itself. Child
	// processes write to their own inherited streams.
	Out io.Writer

	Ask         func() (*prompt.Answers, error)
	InitProject func(baseDir string, req project.Request) (*project.TargetDirectory, error)
	InstallPkg  func(ctx context.Context, dir string, verbose bool) (*installer.Outcome, error)
	NodeVersion func(ctx context.Context) (string, error)
	CheckGate   func(manifestPath, runtimeVersion string) error
	InvokeInit  func(ctx context.Context, root, appName string, verbose bool, originalDir string) error

	state State
	trace []State
}

// New returns a Runner wired to the real prompt, project, installer, gate,
// and delegate implementations.
func New(baseDir string, verbose bool, version string, npmBin string) *Runner {
	inst := &installer.Installer{Bin: npmBin}
	inv := &delegate.Invoker{}

	return &Runner{
		BaseDir:     baseDir,
		Verbose:     verbose,
		Version:     version,
		Out:         os.Stdout,
		Ask:         prompt.NewAsker(os.Stdin, os.Stdout).Ask,
		InitProject: project.Init,
		InstallPkg:  inst.Install,
		NodeVersion: gate.NodeVersion,
		CheckGate:   gate.Check,
		InvokeInit:  inv.Invoke,
	}
}

// State returns the current flow state.
func (r *Runner) State() State { return r.state }

// Trace returns the sequence of states entered so far.
func (r *Runner) Trace() []State { return r.trace }

// Run drives the flow to one of its terminal states. A nil return means the
// delegate completed the handoff with exit status 0; every failure returns
// *ExitError with the code the process should exit with.
func (r *Runner) Run(ctx context.Context) error {
	r.enter(StateShowingIntro)
	fmt.Fprintf(r.Out, "%s %s\n%s\n\n", branding.DisplayName(), r.Version, branding.Tagline())

	r.enter(StateCollectingAnswers)
	answers, err := r.Ask()
	if err != nil {
		return r.abort(fmt.Sprintf("could not read answers: %v", err))
	}

	// Validation must precede every filesystem mutation.
	r.enter(StateValidatingInput)
	req, err := project.NewRequest(answers.Name, answers.Kind)
	if err != nil {
		var reserved *project.ReservedNameError
		if errors.As(err, &reserved) {
			return r.abort(fmt.Sprintf("the project name %q is reserved.\nNames the project will depend on cannot be used:\n  %s",
				reserved.Name, strings.Join(reserved.Denylist, "\n  ")))
		}
		return r.abort(err.Error())
	}
	if req.Kind != project.KindFrontendWeb {
		return r.abort(fmt.Sprintf("%s projects are not supported yet", req.Kind))
	}

	r.enter(StateInitializing)
	target, err := r.InitProject(r.BaseDir, req)
	if err != nil {
		return r.abort(err.Error())
	}

	fmt.Fprintf(r.Out, "Creating a new %s in %s.\n\n", req.Kind, target.AbsolutePath)
	fmt.Fprintf(r.Out, "Installing packages. This might take a couple of minutes.\n")
	fmt.Fprintf(r.Out, "Installing %s...\n\n", branding.DelegatePackage())

	r.enter(StateInstalling)
	outcome, err := r.InstallPkg(ctx, target.AbsolutePath, r.Verbose)
	if err != nil {
		return r.abort(err.Error())
	}
	if outcome.ExitCode != 0 {
		return r.abort(fmt.Sprintf("`%s` failed with exit status %d", outcome.Command, outcome.ExitCode))
	}

	r.enter(StateGatingVersion)
	nodeVersion, err := r.NodeVersion(ctx)
	if err != nil {
		return r.abort(err.Error())
	}
	if err := r.CheckGate(outcome.ManifestPath(), nodeVersion); err != nil {
		return r.abort(err.Error())
	}

	// Handoff: the delegate owns all behavior, output, and the exit code
	// from here on.
	r.enter(StateInvoking)
	if err := r.InvokeInit(ctx, target.AbsolutePath, req.Name, r.Verbose, r.BaseDir); err != nil {
		var exitErr *delegate.ExitError
		if errors.As(err, &exitErr) {
			r.enter(StateAborted)
			return &ExitError{Code: exitErr.Code, Message: exitErr.Error()}
		}
		return r.abort(err.Error())
	}

	r.enter(StateDelegated)
	return nil
}

// enter records a forward transition.
func (r *Runner) enter(s State) {
	r.state = s
	r.trace = append(r.trace, s)
}

// abort moves to the aborted terminal state with exit status 1.
func (r *Runner) abort(message string) error {
	r.enter(StateAborted)
	return &ExitError{Code: 1, Message: message}
}
