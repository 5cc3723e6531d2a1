package project

import (
	"fmt"
	"os"
)

// safeEntries are the directory entries that may already exist in a target
// directory without blocking initialization: version-control metadata,
// editor-project metadata, OS metadata, README and LICENSE. The check is
// case-sensitive and non-recursive.
var safeEntries = map[string]struct{}{
	".git":           {},
	".gitignore":     {},
	".gitattributes": {},
	".hg":            {},
	".hgignore":      {},
	".idea":          {},
	".vscode":        {},
	".DS_Store":      {},
	"Thumbs.db":      {},
	"README.md":      {},
	"LICENSE":        {},
}

// IsSafeDirectory reports whether path contains only benign pre-existing
// entries, so scaffolding into it cannot clobber user data. An empty
// directory is trivially safe. The path must exist and be a directory.
func IsSafeDirectory(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("listing directory %s: %w", path, err)
	}

	for _, entry := range entries {
		if _, ok := safeEntries[entry.Name()]; !ok {
			return false, nil
		}
	}
	return true, nil
}
