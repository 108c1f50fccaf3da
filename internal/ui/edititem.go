package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

// Field order in the edit-item form.
const (
	editItemFieldName = iota
	editItemFieldComment
	editItemFieldLocation
)

// editItem edits an existing item in place. Clearing the location field
// detaches the item from its location.
type editItem struct {
	target  int64
	loaded  bool
	missing bool
	form    *form
}

func newEditItem(id int64) *editItem {
	return &editItem{target: id, form: newForm("Name", "Comment", "Location ID")}
}

func (e *editItem) Refresh(store types.Store) {
	if e.loaded {
		return
	}
	item, ok := store.ItemByID(e.target)
	if !ok {
		e.missing = true
		e.loaded = true
		return
	}
	e.form.setValue(editItemFieldName, item.Name)
	e.form.setValue(editItemFieldComment, item.Comment)
	if item.LocationID != nil {
		e.form.setValue(editItemFieldLocation, strconv.FormatInt(*item.LocationID, 10))
	}
	e.loaded = true
}

func (e *editItem) HandleKey(msg tea.KeyMsg, store types.Store) Transition {
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

func (e *editItem) save(store types.Store) Transition {
	name := e.form.value(editItemFieldName)
	if name == "" {
		e.form.err = "name cannot be empty"
		return Stay()
	}

	var locationID *int64
	if raw := e.form.value(editItemFieldLocation); raw != "" {
		lid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			e.form.err = "location id must be an integer"
			return Stay()
		}
		if !store.LocationExists(lid) {
			e.form.err = "location id does not exist"
			return Stay()
		}
		locationID = &lid
	}

	item := types.Item{
		ID:         e.target,
		Name:       name,
		Comment:    types.NormalizeComment(e.form.value(editItemFieldComment)),
		LocationID: locationID,
	}
	if err := store.EditItem(item); err != nil {
		if types.IsValidation(err) {
			e.form.err = err.Error()
			return Stay()
		}
		return PushError(err.Error())
	}
	return Exit()
}

func (e *editItem) View(width, height int) string {
	if e.missing {
		var b strings.Builder
		b.WriteString(styleTitle.Render("Stockroom — Edit item"))
		b.WriteString("\n\n")
		b.WriteString(styleError.Render(fmt.Sprintf("item %d not found", e.target)))
		b.WriteString("\n\n")
		b.WriteString(styleHelp.Render("enter/esc back"))
		return b.String()
	}
	return e.form.view("Stockroom — Edit item",
		fmt.Sprintf("Item ID: %d", e.target))
}
