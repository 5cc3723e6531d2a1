//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// stubEnv holds the sandbox for one end-to-end run.
type stubEnv struct {
	BinDir   string // stub npm and node live here, prepended to PATH
	WorkDir  string // the directory the launcher is "invoked" from
	ArgsFile string // the node stub records its argv here
}

// setupStubEnv creates stub npm and node executables and puts them first on
// PATH. The npm stub materializes a minimal delegate package (package.json
// plus scripts/init.js) inside the directory it is run in, the way a real
// install would. The node stub answers --version and otherwise records its
// argv, standing in for the delegate's init script execution.
func setupStubEnv(t *testing.T, engines string, npmExit, nodeExit int) *stubEnv {
	t.Helper()

	env := &stubEnv{
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.ArgsFile = filepath.Join(env.BinDir, "node-args.txt")

	enginesField := ""
	if engines != "" {
		enginesField = fmt.Sprintf(`, "engines": {"node": %q}`, engines)
	}

	npmScript := fmt.Sprintf(`#!/bin/sh
if [ %d -ne 0 ]; then exit %d; fi
pkg="$PWD/node_modules/mintapp-scripts"
mkdir -p "$pkg/scripts"
printf '{"name": "mintapp-scripts", "version": "2.4.1"%s}\n' > "$pkg/package.json"
printf '// init\n' > "$pkg/scripts/init.js"
exit 0
`, npmExit, npmExit, enginesField)

	nodeScript := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "--version" ]; then echo "v18.12.1"; exit 0; fi
echo "$@" > %s
exit %d
`, env.ArgsFile, nodeExit)

	writeExecutable(t, filepath.Join(env.BinDir, "npm"), npmScript)
	writeExecutable(t, filepath.Join(env.BinDir, "node"), nodeScript)

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("HOME", t.TempDir())

	return env
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", path, err)
	}
}
