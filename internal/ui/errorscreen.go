package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

// errorScreen surfaces an infrastructure fault. Its only action is
// acknowledging, which pops back to wherever it was pushed from.
type errorScreen struct {
	message string
}

func newErrorScreen(message string) *errorScreen {
	return &errorScreen{message: message}
}

func (e *errorScreen) Refresh(types.Store) {}

func (e *errorScreen) HandleKey(msg tea.KeyMsg, _ types.Store) Transition {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		return Exit()
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return Exit()
		}
	}
	return Stay()
}

func (e *errorScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Stockroom"))
	b.WriteString("\n\n")
	b.WriteString("Stockroom encountered an error\n\n")
	b.WriteString(styleError.Render(e.message))
	b.WriteString("\n\n")
	b.WriteString(styleButtonFocused.Render("[ Ok ]"))
	b.WriteString("\n\n")
	b.WriteString(styleHelp.Render("enter/q/esc acknowledge"))
	return b.String()
}
