package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSafeDirectory(t *testing.T) {
	t.Run("empty directory is safe", func(t *testing.T) {
		safe, err := IsSafeDirectory(t.TempDir())
		require.NoError(t, err)
		assert.True(t, safe)
	})

	t.Run("benign metadata only is safe", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
		for _, name := range []string{".gitignore", "README.md", "LICENSE"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}

		safe, err := IsSafeDirectory(dir)
		require.NoError(t, err)
		assert.True(t, safe)
	})

	t.Run("one extra file makes it unsafe", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.js"), nil, 0644))

		safe, err := IsSafeDirectory(dir)
		require.NoError(t, err)
		assert.False(t, safe)
	})

	t.Run("allowlist is case-sensitive", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), nil, 0644))

		safe, err := IsSafeDirectory(dir)
		require.NoError(t, err)
		assert.False(t, safe)
	})

	t.Run("check is not recursive", func(t *testing.T) {
		// Contents inside an allowlisted directory don't matter.
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".idea", "runConfigurations"), 0755))

		safe, err := IsSafeDirectory(dir)
		require.NoError(t, err)
		assert.True(t, safe)
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := IsSafeDirectory(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}
