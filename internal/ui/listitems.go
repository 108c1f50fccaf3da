package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

const itemColumns = 4

// listItems shows all items with their location resolved to a name (blank
// when the item is unassigned). Confirming a row opens its editor.
type listItems struct {
	rows     []types.Item
	locNames []string
	row      int
	col      int
}

func newListItems() *listItems {
	return &listItems{}
}

func (l *listItems) Refresh(store types.Store) {
	l.rows = store.AllItems()
	l.locNames = make([]string, len(l.rows))
	for i, item := range l.rows {
		if item.LocationID == nil {
			continue
		}
		if loc, ok := store.LocationByID(*item.LocationID); ok {
			l.locNames[i] = loc.Name
		}
	}
	l.row = clampCursor(l.row, len(l.rows))
}

func (l *listItems) HandleKey(msg tea.KeyMsg, _ types.Store) Transition {
	switch msg.Type {
	case tea.KeyEsc:
		return Exit()
	case tea.KeyUp:
		l.row = clampCursor(l.row-1, len(l.rows))
	case tea.KeyDown:
		l.row = clampCursor(l.row+1, len(l.rows))
	case tea.KeyLeft:
		l.col = clampCursor(l.col-1, itemColumns)
	case tea.KeyRight:
		l.col = clampCursor(l.col+1, itemColumns)
	case tea.KeyEnter:
		if len(l.rows) == 0 {
			return Stay()
		}
		return PushEdit(ScreenEditItem, l.rows[l.row].ID)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return Exit()
		case "e":
			if len(l.rows) == 0 {
				return Stay()
			}
			return PushEdit(ScreenEditItem, l.rows[l.row].ID)
		}
	}
	return Stay()
}

func (l *listItems) View(width, height int) string {
	rows := make([][]string, 0, len(l.rows))
	for i, item := range l.rows {
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Comment,
			l.locNames[i],
		})
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Stockroom — Items"))
	b.WriteString("\n\n")
	b.WriteString(renderTable([]string{"ID", "Name", "Comment", "Location"}, rows, l.row, l.col))
	b.WriteString("\n")
	b.WriteString(styleHelp.Render("↑/↓ select · enter/e edit · q/esc back"))
	return b.String()
}
