package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/stockroom/internal/sqlite"
	"github.com/dukaforge/stockroom/pkg/types"
)

func int64p(v int64) *int64 { return &v }

// newTestStore returns an attached in-memory store that detaches when the
// test ends.
func newTestStore(t *testing.T) types.Store {
	t.Helper()

	b := sqlite.NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, InMemory: true}))
	t.Cleanup(func() {
		_ = b.Detach()
	})
	return b
}

// newDetachedStore returns a store whose mutations fail with a lifecycle
// error that is not a validation error.
func newDetachedStore(t *testing.T) types.Store {
	t.Helper()

	b := sqlite.NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, InMemory: true}))
	require.NoError(t, b.Detach())
	return b
}

func key(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// typeString feeds one HandleKey cycle per rune into a screen.
func typeString(t *testing.T, s Screen, store types.Store, text string) {
	t.Helper()
	for _, r := range text {
		tr := s.HandleKey(keyRune(r), store)
		require.Equal(t, ActionStay, tr.Action)
	}
}

// pressN feeds the same key n times, requiring Stay each cycle.
func pressN(t *testing.T, s Screen, store types.Store, kt tea.KeyType, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		tr := s.HandleKey(key(kt), store)
		require.Equal(t, ActionStay, tr.Action)
	}
}
