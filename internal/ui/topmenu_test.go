package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopMenuSelection(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  Transition
	}{
		{name: "list locations", downs: 0, want: Push(ScreenListLocations)},
		{name: "list items", downs: 1, want: Push(ScreenListItems)},
		{name: "find location", downs: 2, want: Push(ScreenLocationLookup)},
		{name: "find item", downs: 3, want: Push(ScreenItemLookup)},
		{name: "create location", downs: 4, want: Push(ScreenCreateLocation)},
		{name: "create item", downs: 5, want: Push(ScreenCreateItem)},
		{name: "exit entry", downs: 6, want: Exit()},
		{name: "cursor clamps at bottom", downs: 20, want: Exit()},
	}

	store := newTestStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTopMenu()
			pressN(t, m, store, tea.KeyDown, tt.downs)
			assert.Equal(t, tt.want, m.HandleKey(key(tea.KeyEnter), store))
		})
	}
}

func TestTopMenuCursorClampsAtTop(t *testing.T) {
	store := newTestStore(t)
	m := newTopMenu()

	pressN(t, m, store, tea.KeyDown, 2)
	pressN(t, m, store, tea.KeyUp, 5)
	require.Equal(t, 0, m.cursor)
}

func TestTopMenuQuitKeys(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, Exit(), newTopMenu().HandleKey(keyRune('q'), store))
	assert.Equal(t, Exit(), newTopMenu().HandleKey(key(tea.KeyEsc), store))
}

func TestTopMenuViewHighlightsCursor(t *testing.T) {
	m := newTopMenu()
	assert.Contains(t, m.View(80, 24), ">> List locations")

	pressN(t, m, newTestStore(t), tea.KeyDown, 1)
	assert.Contains(t, m.View(80, 24), ">> List items")
}
