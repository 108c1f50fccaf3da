package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/stockroom/pkg/types"
)

// newTestBackend returns an attached in-memory backend that detaches when
// the test ends.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	b := NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, InMemory: true}))
	t.Cleanup(func() {
		_ = b.Detach()
	})
	return b
}

func TestAttachDetach(t *testing.T) {
	t.Run("attach validates config", func(t *testing.T) {
		b := NewBackend(nil)
		assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrBackendEmpty)
	})

	t.Run("double attach fails", func(t *testing.T) {
		b := newTestBackend(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, InMemory: true})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})

	t.Run("detach without attach fails", func(t *testing.T) {
		b := NewBackend(nil)
		assert.ErrorIs(t, b.Detach(), types.ErrDetached)
	})

	t.Run("operations on detached backend degrade", func(t *testing.T) {
		b := NewBackend(nil)
		assert.ErrorIs(t, b.AddLocation(types.Location{ID: 1, Name: "bin"}), types.ErrDetached)
		assert.False(t, b.LocationExists(1))
		assert.Empty(t, b.AllLocations())
	})
}

func TestFileBackedPersistence(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	b := NewBackend(nil)
	require.NoError(t, b.Attach(cfg))
	require.NoError(t, b.AddLocation(types.Location{ID: 1, Name: "shelf", Comment: "top"}))
	require.NoError(t, b.Detach())

	assert.FileExists(t, filepath.Join(dataDir, dbFileName))

	// Re-attach and confirm the row survived.
	b2 := NewBackend(nil)
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	loc, ok := b2.LocationByID(1)
	require.True(t, ok)
	assert.Equal(t, types.Location{ID: 1, Name: "shelf", Comment: "top"}, loc)
}
