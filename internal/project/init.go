package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestVersion is the version stamped into every freshly minted
// package.json. The delegate package owns the manifest after handoff and
// rewrites it as it sees fit.
const ManifestVersion = "0.1.0"

// manifest is the initial package.json written into the project root.
type manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Private bool   `json:"private"`
}

// ConflictError reports a target directory that already exists with contents
// the safety check does not allow scaffolding over.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("the directory %s contains files that could conflict; try a different project name or remove them", e.Path)
}

// Init materializes the target directory for a validated request and writes
// the initial package.json manifest. The directory is created if absent; an
// existing directory is reused only when it passes the safety check. Init
// never changes the process working directory; callers pass the returned
// absolute path around explicitly.
//
// Init is not transactional: if the manifest write fails after the directory
// was created, the directory is left behind.
func Init(baseDir string, req Request) (*TargetDirectory, error) {
	root, err := filepath.Abs(filepath.Join(baseDir, req.Name))
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	target := &TargetDirectory{AbsolutePath: root}

	info, err := os.Stat(root)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, &ConflictError{Path: root}
		}
		safe, err := IsSafeDirectory(root)
		if err != nil {
			return nil, err
		}
		if !safe {
			return nil, &ConflictError{Path: root}
		}
		target.Preexisting = true
	case os.IsNotExist(err):
		if err := os.MkdirAll(root, 0755); err != nil {
			return nil, fmt.Errorf("creating project directory %s: %w", root, err)
		}
	default:
		return nil, fmt.Errorf("checking project directory %s: %w", root, err)
	}

	if err := writeManifest(root, req.Name); err != nil {
		return nil, err
	}

	return target, nil
}

// writeManifest writes the initial package.json with 2-space indentation and
// a trailing newline, matching what npm itself produces.
func writeManifest(root, name string) error {
	m := manifest{Name: name, Version: ManifestVersion, Private: true}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding package.json: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(root, "package.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
