package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataPath(t *testing.T) {
	t.Run("Env Override", func(t *testing.T) {
		t.Setenv("LOREKEEP_DATA", "/tmp/custom/notes.json")

		path, err := DefaultDataPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom/notes.json", path)
	})

	t.Run("Config Dir Fallback", func(t *testing.T) {
		t.Setenv("LOREKEEP_DATA", "")

		path, err := DefaultDataPath()
		require.NoError(t, err)
		assert.Equal(t, "notes.json", filepath.Base(path))
		assert.Contains(t, path, "lorekeep")
	})
}

func TestFindDataFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "campaign", "maps")
	require.NoError(t, os.MkdirAll(nested, 0755))

	blob := filepath.Join(root, "campaign", LocalDataFile)
	require.NoError(t, os.WriteFile(blob, []byte("{}"), 0644))

	t.Run("Found Walking Upward", func(t *testing.T) {
		got, ok := FindDataFile(nested)
		require.True(t, ok)
		assert.Equal(t, blob, got)
	})

	t.Run("Nearest Wins", func(t *testing.T) {
		closer := filepath.Join(nested, LocalDataFile)
		require.NoError(t, os.WriteFile(closer, []byte("{}"), 0644))

		got, ok := FindDataFile(nested)
		require.True(t, ok)
		assert.Equal(t, closer, got)
	})

	t.Run("Not Found", func(t *testing.T) {
		empty := t.TempDir()
		_, ok := FindDataFile(empty)
		assert.False(t, ok)
	})
}
