package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form is the editing sub-state shared by the create, edit, and lookup
// screens: an ordered list of text fields followed by the fixed Cancel and
// Save actions. Tab/Down and Shift+Tab/Up cycle the focus with wrap; every
// other key goes to the buffer of the focused field, whose cursor textinput
// keeps clamped to the buffer bounds.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
}

// Focus slots following the text fields.
func (f *form) cancelSlot() int { return len(f.inputs) }
func (f *form) saveSlot() int   { return len(f.inputs) + 1 }

func newForm(labels ...string) *form {
	f := &form{labels: labels}
	for range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 96
		f.inputs = append(f.inputs, ti)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// setValue pre-fills a field, placing the cursor at the end.
func (f *form) setValue(i int, value string) {
	f.inputs[i].SetValue(value)
	f.inputs[i].CursorEnd()
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) onCancel() bool { return f.focus == f.cancelSlot() }
func (f *form) onSave() bool   { return f.focus == f.saveSlot() }

// cycle moves the focus by delta slots, wrapping past Save back to the first
// field.
func (f *form) cycle(delta int) {
	slots := len(f.inputs) + 2
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + slots) % slots
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

// handleKey routes one key event into the form. It reports true when the
// event was consumed (focus movement or buffer edit); Enter and Esc are left
// to the owning screen.
func (f *form) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		f.cycle(1)
		return true
	case tea.KeyShiftTab, tea.KeyUp:
		f.cycle(-1)
		return true
	case tea.KeyEnter, tea.KeyEsc:
		return false
	}
	if f.focus < len(f.inputs) {
		f.err = ""
		f.inputs[f.focus], _ = f.inputs[f.focus].Update(msg)
		return true
	}
	return false
}

// view renders the fields, buttons, and any inline error below a title.
// Read-only header lines (e.g. the immutable id on edit screens) come first.
func (f *form) view(title string, header ...string) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n\n")

	for _, line := range header {
		b.WriteString(styleLabel.Render(line))
		b.WriteString("\n")
	}
	if len(header) > 0 {
		b.WriteString("\n")
	}

	for i, label := range f.labels {
		style := styleLabel
		if f.focus == i {
			style = styleLabelFocused
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}

	cancel := styleButton
	save := styleButton
	if f.onCancel() {
		cancel = styleButtonFocused
	}
	if f.onSave() {
		save = styleButtonFocused
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		cancel.Render("[ Cancel ]"), "  ", save.Render("[ Save ]")))
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(f.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render("tab/↓ next field · ↑ previous · enter confirm · esc cancel"))
	return b.String()
}
