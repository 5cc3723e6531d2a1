//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mintapp-labs/mintapp/internal/bootstrap"
	"github.com/mintapp-labs/mintapp/internal/project"
	"github.com/mintapp-labs/mintapp/internal/prompt"
)

// newRunner wires a real bootstrap flow against the stub environment, with
// only the interactive prompt scripted.
func newRunner(env *stubEnv, name string) *bootstrap.Runner {
	r := bootstrap.New(env.WorkDir, false, "1.0.0-test", "npm")
	r.Out = new(bytes.Buffer)
	r.Ask = func() (*prompt.Answers, error) {
		return &prompt.Answers{Name: name, Kind: project.KindFrontendWeb}, nil
	}
	return r
}

func TestEndToEndHandoff(t *testing.T) {
	env := setupStubEnv(t, "", 0, 0)

	r := newRunner(env, "myapp")
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if r.State() != bootstrap.StateDelegated {
		t.Errorf("final state = %s, want delegated", r.State())
	}

	root := filepath.Join(env.WorkDir, "myapp")

	// The manifest was written before the install.
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatalf("reading project manifest: %v", err)
	}
	want := "{\n  \"name\": \"myapp\",\n  \"version\": \"0.1.0\",\n  \"private\": true\n}\n"
	if string(data) != want {
		t.Errorf("package.json = %q, want %q", data, want)
	}

	// The delegate was invoked exactly once with the four arguments.
	args, err := os.ReadFile(env.ArgsFile)
	if err != nil {
		t.Fatalf("delegate was not invoked: %v", err)
	}
	fields := strings.Fields(strings.TrimSpace(string(args)))
	entry := filepath.Join(root, "node_modules", "mintapp-scripts", "scripts", "init.js")
	wantArgs := []string{entry, root, "myapp", "false", env.WorkDir}
	if len(fields) != len(wantArgs) {
		t.Fatalf("delegate argv = %v, want %v", fields, wantArgs)
	}
	for i := range wantArgs {
		if fields[i] != wantArgs[i] {
			t.Errorf("delegate argv[%d] = %q, want %q", i, fields[i], wantArgs[i])
		}
	}
}

func TestEndToEndEngineGatePasses(t *testing.T) {
	env := setupStubEnv(t, ">=10.0.0", 0, 0)

	r := newRunner(env, "gated")
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.State() != bootstrap.StateDelegated {
		t.Errorf("final state = %s, want delegated", r.State())
	}
}

func TestEndToEndUnsupportedRuntime(t *testing.T) {
	// Stub node reports v18.12.1; the delegate demands 20+.
	env := setupStubEnv(t, ">=20.0.0", 0, 0)

	r := newRunner(env, "toonew")
	err := r.Run(context.Background())

	var exitErr *bootstrap.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *bootstrap.ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if !strings.Contains(exitErr.Message, "18.12.1") || !strings.Contains(exitErr.Message, ">=20.0.0") {
		t.Errorf("diagnostic %q should name both versions", exitErr.Message)
	}

	if _, err := os.Stat(env.ArgsFile); err == nil {
		t.Error("delegate must not be invoked when the version gate fails")
	}
}

func TestEndToEndInstallFailure(t *testing.T) {
	env := setupStubEnv(t, "", 1, 0)

	r := newRunner(env, "broken")
	err := r.Run(context.Background())

	var exitErr *bootstrap.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *bootstrap.ExitError", err)
	}
	if !strings.Contains(exitErr.Message, "npm install --save-dev --save-exact mintapp-scripts") {
		t.Errorf("diagnostic %q should name the exact invoked command", exitErr.Message)
	}

	if _, err := os.Stat(env.ArgsFile); err == nil {
		t.Error("delegate must not be invoked when the install fails")
	}
}

func TestEndToEndDelegateExitCodeAdopted(t *testing.T) {
	env := setupStubEnv(t, "", 0, 5)

	r := newRunner(env, "failing")
	err := r.Run(context.Background())

	var exitErr *bootstrap.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *bootstrap.ExitError", err)
	}
	if exitErr.Code != 5 {
		t.Errorf("exit code = %d, want 5 (the delegate's)", exitErr.Code)
	}
}
