package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

type lookupKind int

const (
	lookupLocation lookupKind = iota
	lookupItem
)

// lookupScreen collects a candidate id and, on confirm, opens the matching
// edit screen. Validation failures keep the screen active with the buffer
// intact so the user can correct it.
type lookupScreen struct {
	kind  lookupKind
	input textinput.Model
	err   string
}

func newLookup(kind lookupKind) *lookupScreen {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 20
	input.Focus()
	return &lookupScreen{kind: kind, input: input}
}

func newLocationLookup() *lookupScreen { return newLookup(lookupLocation) }
func newItemLookup() *lookupScreen     { return newLookup(lookupItem) }

func (l *lookupScreen) Refresh(types.Store) {}

func (l *lookupScreen) HandleKey(msg tea.KeyMsg, store types.Store) Transition {
	switch msg.Type {
	case tea.KeyEsc:
		return Exit()
	case tea.KeyEnter:
		return l.find(store)
	}
	l.err = ""
	l.input, _ = l.input.Update(msg)
	return Stay()
}

// find parses and resolves the entered id.
func (l *lookupScreen) find(store types.Store) Transition {
	id, err := strconv.ParseInt(strings.TrimSpace(l.input.Value()), 10, 64)
	if err != nil {
		l.err = types.ErrBadID.Error()
		return Stay()
	}

	switch l.kind {
	case lookupLocation:
		if !store.LocationExists(id) {
			l.err = "location id does not exist"
			return Stay()
		}
		return PushEdit(ScreenEditLocation, id)
	default:
		if !store.ItemExists(id) {
			l.err = "item id does not exist"
			return Stay()
		}
		return PushEdit(ScreenEditItem, id)
	}
}

func (l *lookupScreen) View(width, height int) string {
	noun, label := "location", "Location ID"
	if l.kind == lookupItem {
		noun, label = "item", "Item ID"
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Stockroom — Find " + noun))
	b.WriteString("\n\n")
	b.WriteString("Enter the " + noun + " id and hit enter\n\n")
	b.WriteString(styleLabelFocused.Render(label))
	b.WriteString("\n")
	b.WriteString(l.input.View())
	b.WriteString("\n")
	if l.err != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(l.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleHelp.Render("enter confirm · esc back"))
	return b.String()
}
