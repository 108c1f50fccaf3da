// Package ui implements the stockroom terminal interface: a stack-based
// navigator driving a closed catalog of screens on top of Bubble Tea.
//
// Each screen renders its state from View and consumes one key event per
// HandleKey call, reporting the resulting stack transition. Screens never
// run concurrently; the navigator drives exactly one per cycle and hands
// every screen the same store handle.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

// ScreenID names the screens of the catalog.
type ScreenID int

const (
	ScreenTopMenu ScreenID = iota
	ScreenListLocations
	ScreenListItems
	ScreenLocationLookup
	ScreenItemLookup
	ScreenCreateLocation
	ScreenCreateItem
	ScreenEditLocation
	ScreenEditItem
	ScreenError
)

func (id ScreenID) String() string {
	switch id {
	case ScreenTopMenu:
		return "top-menu"
	case ScreenListLocations:
		return "list-locations"
	case ScreenListItems:
		return "list-items"
	case ScreenLocationLookup:
		return "location-lookup"
	case ScreenItemLookup:
		return "item-lookup"
	case ScreenCreateLocation:
		return "create-location"
	case ScreenCreateItem:
		return "create-item"
	case ScreenEditLocation:
		return "edit-location"
	case ScreenEditItem:
		return "edit-item"
	case ScreenError:
		return "error"
	}
	return fmt.Sprintf("screen(%d)", int(id))
}

// Screen is one modal interactive unit.
//
// HandleKey interprets a single key event against the screen's sub-state and
// returns the requested transition; repeated Stay cycles must not mutate the
// rendered state. Refresh re-pulls store data when the screen becomes the top
// of the stack; it must never fail outward, degrading to an empty or
// error-display result instead. View renders the current state to a frame
// string and must be side-effect free.
type Screen interface {
	Refresh(store types.Store)
	HandleKey(msg tea.KeyMsg, store types.Store) Transition
	View(width, height int) string
}

// newScreen instantiates a catalog screen from a push transition. The
// catalog is closed: an unknown target degrades to the error screen rather
// than panicking mid-session.
func newScreen(t Transition) Screen {
	switch t.Target {
	case ScreenTopMenu:
		return newTopMenu()
	case ScreenListLocations:
		return newListLocations()
	case ScreenListItems:
		return newListItems()
	case ScreenLocationLookup:
		return newLocationLookup()
	case ScreenItemLookup:
		return newItemLookup()
	case ScreenCreateLocation:
		return newCreateLocation()
	case ScreenCreateItem:
		return newCreateItem()
	case ScreenEditLocation:
		return newEditLocation(t.EntityID)
	case ScreenEditItem:
		return newEditItem(t.EntityID)
	case ScreenError:
		return newErrorScreen(t.Message)
	}
	return newErrorScreen(fmt.Sprintf("unknown screen %s", t.Target))
}
