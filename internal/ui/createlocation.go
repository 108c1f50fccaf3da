package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

// Field order in the create-location form.
const (
	createLocFieldID = iota
	createLocFieldName
	createLocFieldComment
)

// createLocation collects a new location. The id is caller-chosen and must
// be unused.
type createLocation struct {
	form *form
}

func newCreateLocation() *createLocation {
	return &createLocation{form: newForm("Location ID", "Name", "Comment")}
}

func (c *createLocation) Refresh(types.Store) {}

func (c *createLocation) HandleKey(msg tea.KeyMsg, store types.Store) Transition {
	if msg.Type == tea.KeyEsc {
		return Exit()
	}
	if msg.Type == tea.KeyEnter {
		switch {
		case c.form.onCancel():
			return Exit()
		case c.form.onSave():
			return c.save(store)
		}
		return Stay()
	}
	c.form.handleKey(msg)
	return Stay()
}

// save validates the buffers and commits. Validation failures stay inline;
// only unexpected store faults escalate to the error screen.
func (c *createLocation) save(store types.Store) Transition {
	id, err := strconv.ParseInt(c.form.value(createLocFieldID), 10, 64)
	if err != nil {
		c.form.err = "location id must be an integer"
		return Stay()
	}
	name := c.form.value(createLocFieldName)
	if name == "" {
		c.form.err = "name cannot be empty"
		return Stay()
	}

	loc := types.Location{
		ID:      id,
		Name:    name,
		Comment: types.NormalizeComment(c.form.value(createLocFieldComment)),
	}
	if err := store.AddLocation(loc); err != nil {
		if types.IsValidation(err) {
			c.form.err = err.Error()
			return Stay()
		}
		return PushError(err.Error())
	}
	return Exit()
}

func (c *createLocation) View(width, height int) string {
	return c.form.view("Stockroom — Create location")
}
