package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/pkg/adapters/blob"
	"github.com/lorekeep/lorekeep/pkg/core"
)

func newGateway(t *testing.T) (*blob.Gateway, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.json")
	return blob.NewGateway(blob.Config{Path: path}), path
}

func TestGatewayRoundTrip(t *testing.T) {
	gw, _ := newGateway(t)
	ctx := context.Background()

	saved := core.DefaultStore()
	require.NoError(t, gw.Save(ctx, saved))

	loaded, err := gw.Load(ctx)
	require.NoError(t, err)

	assert.Len(t, loaded.Items, len(saved.Items))
	assert.Equal(t, saved.Settings, loaded.Settings)
	assert.NoError(t, loaded.CheckIntegrity())
}

func TestGatewayLoadMissing(t *testing.T) {
	gw, _ := newGateway(t)

	_, err := gw.Load(context.Background())
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestGatewayLoadCorrupt(t *testing.T) {
	gw, path := newGateway(t)
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0644))

	_, err := gw.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrNotFound)
}

func TestGatewaySaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "notes.json")
	gw := blob.NewGateway(blob.Config{Path: path})

	require.NoError(t, gw.Save(context.Background(), core.NewStore()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestGatewaySaveLeavesNoTempFiles(t *testing.T) {
	gw, path := newGateway(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, gw.Save(ctx, core.DefaultStore()))
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), blob.TempFilePrefix),
			"leftover temp file: %s", e.Name())
	}
}

func TestGatewaySaveStamps(t *testing.T) {
	gw, _ := newGateway(t)
	ctx := context.Background()

	s := core.NewStore()
	before := s.Meta.UpdatedAt
	require.NoError(t, gw.Save(ctx, s))

	loaded, err := gw.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Meta.UpdatedAt.After(before) || loaded.Meta.UpdatedAt.Equal(before))

	state, ok := gw.State().(blob.GatewayState)
	require.True(t, ok)
	assert.NotNil(t, state.LastSave)
}
