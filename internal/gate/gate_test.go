package gate

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDelegateManifest(t *testing.T, nodeRange string) string {
	t.Helper()
	content := `{"name": "mintapp-scripts", "version": "2.4.1"}`
	if nodeRange != "" {
		content = fmt.Sprintf(`{"name": "mintapp-scripts", "version": "2.4.1", "engines": {"node": %q}}`, nodeRange)
	}
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheck(t *testing.T) {
	t.Run("runtime below the floor fails", func(t *testing.T) {
		path := writeDelegateManifest(t, ">=16.0.0")

		err := Check(path, "14.0.0")
		var unsupported *UnsupportedRuntimeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "14.0.0", unsupported.Have)
		assert.Equal(t, ">=16.0.0", unsupported.Want)
	})

	t.Run("runtime above the floor passes", func(t *testing.T) {
		path := writeDelegateManifest(t, ">=10.0.0")
		assert.NoError(t, Check(path, "14.0.0"))
	})

	t.Run("no declared constraint passes trivially", func(t *testing.T) {
		path := writeDelegateManifest(t, "")
		assert.NoError(t, Check(path, "8.0.0"))
	})

	t.Run("caret range", func(t *testing.T) {
		path := writeDelegateManifest(t, "^18.0.0")
		assert.NoError(t, Check(path, "18.12.1"))
		assert.Error(t, Check(path, "20.0.0"))
	})

	t.Run("tilde range", func(t *testing.T) {
		path := writeDelegateManifest(t, "~16.14.0")
		assert.NoError(t, Check(path, "16.14.2"))
		assert.Error(t, Check(path, "16.15.0"))
	})

	t.Run("v-prefixed runtime version is tolerated", func(t *testing.T) {
		path := writeDelegateManifest(t, ">=16.0.0")
		assert.NoError(t, Check(path, "v18.0.0"))
	})

	t.Run("pre-release runtime does not satisfy a release floor", func(t *testing.T) {
		path := writeDelegateManifest(t, ">=16.0.0")
		assert.Error(t, Check(path, "16.0.0-rc.1"))
	})

	t.Run("invalid declared range", func(t *testing.T) {
		path := writeDelegateManifest(t, "not-a-range")

		err := Check(path, "16.0.0")
		require.Error(t, err)
		assert.NotErrorAs(t, err, new(*UnsupportedRuntimeError))
	})

	t.Run("malformed manifest is rejected by schema", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"engines": {"node": 16}}`), 0644))

		err := Check(path, "16.0.0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed")
	})

	t.Run("missing manifest", func(t *testing.T) {
		assert.Error(t, Check(filepath.Join(t.TempDir(), "package.json"), "16.0.0"))
	})
}
