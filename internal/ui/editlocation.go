package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

// Field order in the edit-location form.
const (
	editLocFieldName = iota
	editLocFieldComment
)

// editLocation edits an existing location in place. The id is immutable; the
// screen works on a transient copy that is only committed on Save.
type editLocation struct {
	target  int64
	loaded  bool
	missing bool
	form    *form
}

func newEditLocation(id int64) *editLocation {
	return &editLocation{target: id, form: newForm("Name", "Comment")}
}

// Refresh pulls the entity once on first activation. Later refreshes (e.g.
// returning from the error screen) keep the in-progress buffers.
func (e *editLocation) Refresh(store types.Store) {
	if e.loaded {
		return
	}
	loc, ok := store.LocationByID(e.target)
	if !ok {
		e.missing = true
		e.loaded = true
		return
	}
	e.form.setValue(editLocFieldName, loc.Name)
	e.form.setValue(editLocFieldComment, loc.Comment)
	e.loaded = true
}

func (e *editLocation) HandleKey(msg tea.KeyMsg, store types.Store) Transition {
	if e.missing {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			return Exit()
		}
		return Stay()
	}

	if msg.Type == tea.KeyEsc {
		return Exit()
	}
	if msg.Type == tea.KeyEnter {
		switch {
		case e.form.onCancel():
			return Exit()
		case e.form.onSave():
			return e.save(store)
		}
		return Stay()
	}
	e.form.handleKey(msg)
	return Stay()
}

func (e *editLocation) save(store types.Store) Transition {
	name := e.form.value(editLocFieldName)
	if name == "" {
		e.form.err = "name cannot be empty"
		return Stay()
	}

	loc := types.Location{
		ID:      e.target,
		Name:    name,
		Comment: types.NormalizeComment(e.form.value(editLocFieldComment)),
	}
	if err := store.EditLocation(loc); err != nil {
		if types.IsValidation(err) {
			e.form.err = err.Error()
			return Stay()
		}
		return PushError(err.Error())
	}
	return Exit()
}

func (e *editLocation) View(width, height int) string {
	if e.missing {
		var b strings.Builder
		b.WriteString(styleTitle.Render("Stockroom — Edit location"))
		b.WriteString("\n\n")
		b.WriteString(styleError.Render(fmt.Sprintf("location %d not found", e.target)))
		b.WriteString("\n\n")
		b.WriteString(styleHelp.Render("enter/esc back"))
		return b.String()
	}
	return e.form.view("Stockroom — Edit location",
		fmt.Sprintf("Location ID: %d", e.target))
}
