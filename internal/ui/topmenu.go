package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

// menuEntry pairs a label with the screen it opens; an exit entry pops the
// menu instead of pushing.
type menuEntry struct {
	label  string
	target ScreenID
	exit   bool
}

var menuEntries = []menuEntry{
	{label: "List locations", target: ScreenListLocations},
	{label: "List items", target: ScreenListItems},
	{label: "Find location by id", target: ScreenLocationLookup},
	{label: "Find item by id", target: ScreenItemLookup},
	{label: "Create location", target: ScreenCreateLocation},
	{label: "Create item", target: ScreenCreateItem},
	{label: "Exit", exit: true},
}

// topMenu is the entry screen of the application.
type topMenu struct {
	cursor int
}

func newTopMenu() *topMenu {
	return &topMenu{}
}

func (m *topMenu) Refresh(types.Store) {}

func (m *topMenu) HandleKey(msg tea.KeyMsg, _ types.Store) Transition {
	switch msg.Type {
	case tea.KeyEsc:
		return Exit()
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		entry := menuEntries[m.cursor]
		if entry.exit {
			return Exit()
		}
		return Push(entry.target)
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return Exit()
		}
	}
	return Stay()
}

func (m *topMenu) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Stockroom"))
	b.WriteString("\n\n")
	for i, entry := range menuEntries {
		if i == m.cursor {
			b.WriteString(styleSelectedRow.Render(">> " + entry.label))
		} else {
			b.WriteString("   " + entry.label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleHelp.Render("↑/↓ move · enter select · q/esc exit"))
	return b.String()
}
