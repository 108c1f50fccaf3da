package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/stockroom/pkg/types"
)

func TestCreateLocationSave(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddLocation(types.Location{ID: 101, Name: "taken"}))

	tests := []struct {
		name     string
		id       string
		locName  string
		comment  string
		wantSave bool
	}{
		{name: "valid", id: "1", locName: "Bin A", comment: "top shelf", wantSave: true},
		{name: "valid without comment", id: "2", locName: "Bin B", wantSave: true},
		{name: "unparsable id", id: "nan", locName: "x", wantSave: false},
		{name: "hex id rejected", id: "0xff", locName: "x", wantSave: false},
		{name: "duplicate id", id: "101", locName: "x", wantSave: false},
		{name: "empty name", id: "3", locName: "", wantSave: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCreateLocation()
			c.form.setValue(createLocFieldID, tt.id)
			c.form.setValue(createLocFieldName, tt.locName)
			c.form.setValue(createLocFieldComment, tt.comment)

			tr := c.save(store)
			if tt.wantSave {
				assert.Equal(t, Exit(), tr)
			} else {
				assert.Equal(t, ActionStay, tr.Action)
				assert.NotEmpty(t, c.form.err)
			}
		})
	}
}

func TestCreateLocationNormalizesComment(t *testing.T) {
	store := newTestStore(t)

	c := newCreateLocation()
	c.form.setValue(createLocFieldID, "9")
	c.form.setValue(createLocFieldName, "Bin")
	c.form.setValue(createLocFieldComment, "   ")
	require.Equal(t, Exit(), c.save(store))

	loc, ok := store.LocationByID(9)
	require.True(t, ok)
	assert.Empty(t, loc.Comment)
}

func TestCreateItemSave(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddLocation(types.Location{ID: 1, Name: "Bin A"}))
	require.NoError(t, store.AddItem(types.Item{ID: 100, Name: "Widget", LocationID: int64p(1)}))

	tests := []struct {
		name       string
		id         string
		itemName   string
		locationID string
		wantSave   bool
		wantErr    string
	}{
		{name: "valid with location", id: "101", itemName: "Gadget", locationID: "1", wantSave: true},
		{name: "valid unassigned", id: "102", itemName: "Gizmo", wantSave: true},
		{name: "duplicate id", id: "100", itemName: "Dup", wantSave: false},
		{name: "dangling reference", id: "103", itemName: "Orphan", locationID: "99",
			wantSave: false, wantErr: "location id does not exist"},
		{name: "unparsable location id", id: "104", itemName: "x", locationID: "nan",
			wantSave: false, wantErr: "location id must be an integer"},
		{name: "unparsable id", id: "abc", itemName: "x", wantSave: false},
		{name: "empty name", id: "105", itemName: "", wantSave: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCreateItem()
			c.form.setValue(createItemFieldID, tt.id)
			c.form.setValue(createItemFieldName, tt.itemName)
			c.form.setValue(createItemFieldLocation, tt.locationID)

			tr := c.save(store)
			if tt.wantSave {
				assert.Equal(t, Exit(), tr)
				return
			}
			assert.Equal(t, ActionStay, tr.Action)
			require.NotEmpty(t, c.form.err)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, c.form.err)
			}
		})
	}
}

func TestCreateItemKeyboardFlow(t *testing.T) {
	store := newTestStore(t)

	c := newCreateItem()
	typeString(t, c, store, "42")
	pressN(t, c, store, tea.KeyTab, 1)
	typeString(t, c, store, "Widget")

	// Tab past Comment and Location ID onto Save, then confirm.
	pressN(t, c, store, tea.KeyTab, 4)
	require.True(t, c.form.onSave())
	assert.Equal(t, Exit(), c.HandleKey(key(tea.KeyEnter), store))

	item, ok := store.ItemByID(42)
	require.True(t, ok)
	assert.Equal(t, "Widget", item.Name)
	assert.Empty(t, item.Comment)
	assert.Nil(t, item.LocationID)
}

func TestCreateStoreFaultEscalates(t *testing.T) {
	store := newDetachedStore(t)

	t.Run("location", func(t *testing.T) {
		c := newCreateLocation()
		c.form.setValue(createLocFieldID, "1")
		c.form.setValue(createLocFieldName, "Bin A")

		tr := c.save(store)
		assert.Equal(t, ActionPush, tr.Action)
		assert.Equal(t, ScreenError, tr.Target)
		assert.NotEmpty(t, tr.Message)
		assert.Empty(t, c.form.err)
	})

	t.Run("item", func(t *testing.T) {
		c := newCreateItem()
		c.form.setValue(createItemFieldID, "100")
		c.form.setValue(createItemFieldName, "Widget")

		tr := c.save(store)
		assert.Equal(t, ActionPush, tr.Action)
		assert.Equal(t, ScreenError, tr.Target)
		assert.NotEmpty(t, tr.Message)
	})
}

func TestCreateCancelAndEsc(t *testing.T) {
	store := newTestStore(t)

	t.Run("cancel writes nothing", func(t *testing.T) {
		c := newCreateLocation()
		typeString(t, c, store, "7")
		c.form.focus = c.form.cancelSlot()
		assert.Equal(t, Exit(), c.HandleKey(key(tea.KeyEnter), store))
		assert.False(t, store.LocationExists(7))
	})

	t.Run("esc exits without writing", func(t *testing.T) {
		c := newCreateItem()
		typeString(t, c, store, "8")
		assert.Equal(t, Exit(), c.HandleKey(key(tea.KeyEsc), store))
		assert.False(t, store.ItemExists(8))
	})

	t.Run("enter on a text field does nothing", func(t *testing.T) {
		c := newCreateItem()
		assert.Equal(t, Stay(), c.HandleKey(key(tea.KeyEnter), store))
	})
}
