package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

// Field order in the create-item form.
const (
	createItemFieldID = iota
	createItemFieldName
	createItemFieldComment
	createItemFieldLocation
)

// createItem collects a new item. A non-empty location field must name an
// existing location.
type createItem struct {
	form *form
}

func newCreateItem() *createItem {
	return &createItem{form: newForm("Item ID", "Name", "Comment", "Location ID")}
}

func (c *createItem) Refresh(types.Store) {}

func (c *createItem) HandleKey(msg tea.KeyMsg, store types.Store) Transition {
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

func (c *createItem) save(store types.Store) Transition {
	id, err := strconv.ParseInt(c.form.value(createItemFieldID), 10, 64)
	if err != nil {
		c.form.err = "item id must be an integer"
		return Stay()
	}
	name := c.form.value(createItemFieldName)
	if name == "" {
		c.form.err = "name cannot be empty"
		return Stay()
	}

	var locationID *int64
	if raw := c.form.value(createItemFieldLocation); raw != "" {
		lid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.form.err = "location id must be an integer"
			return Stay()
		}
		if !store.LocationExists(lid) {
			c.form.err = "location id does not exist"
			return Stay()
		}
		locationID = &lid
	}

	item := types.Item{
		ID:         id,
		Name:       name,
		Comment:    types.NormalizeComment(c.form.value(createItemFieldComment)),
		LocationID: locationID,
	}
	if err := store.AddItem(item); err != nil {
		if types.IsValidation(err) {
			c.form.err = err.Error()
			return Stay()
		}
		return PushError(err.Error())
	}
	return Exit()
}

func (c *createItem) View(width, height int) string {
	return c.form.view("Stockroom — Create item")
}
