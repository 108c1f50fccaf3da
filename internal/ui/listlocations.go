package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/stockroom/pkg/types"
)

const locationColumns = 3

// listLocations shows all locations with a live substring filter over name
// and comment. Confirming a row opens its editor.
type listLocations struct {
	rows   []types.Location
	row    int
	col    int
	search textinput.Model
}

func newListLocations() *listLocations {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "type to filter"
	search.CharLimit = 64
	search.Focus()
	return &listLocations{search: search}
}

func (l *listLocations) Refresh(store types.Store) {
	l.requery(store)
}

// requery re-reads the snapshot for the current filter term.
func (l *listLocations) requery(store types.Store) {
	term := l.search.Value()
	if term == "" {
		l.rows = store.AllLocations()
	} else {
		l.rows = store.SearchLocations(term)
	}
	l.row = clampCursor(l.row, len(l.rows))
}

func (l *listLocations) HandleKey(msg tea.KeyMsg, store types.Store) Transition {
	switch msg.Type {
	case tea.KeyEsc:
		return Exit()
	case tea.KeyUp:
		l.row = clampCursor(l.row-1, len(l.rows))
		return Stay()
	case tea.KeyDown:
		l.row = clampCursor(l.row+1, len(l.rows))
		return Stay()
	case tea.KeyLeft:
		l.col = clampCursor(l.col-1, locationColumns)
		return Stay()
	case tea.KeyRight:
		l.col = clampCursor(l.col+1, locationColumns)
		return Stay()
	case tea.KeyEnter:
		if len(l.rows) == 0 {
			return Stay()
		}
		return PushEdit(ScreenEditLocation, l.rows[l.row].ID)
	}

	// Everything else edits the filter buffer.
	l.search, _ = l.search.Update(msg)
	l.requery(store)
	return Stay()
}

func (l *listLocations) View(width, height int) string {
	rows := make([][]string, 0, len(l.rows))
	for _, loc := range l.rows {
		rows = append(rows, []string{
			strconv.FormatInt(loc.ID, 10),
			loc.Name,
			loc.Comment,
		})
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Stockroom — Locations"))
	b.WriteString("\n\n")
	b.WriteString(renderTable([]string{"ID", "Name", "Comment"}, rows, l.row, l.col))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(l.search.View())
	b.WriteString("\n\n")
	b.WriteString(styleHelp.Render("↑/↓ select · enter edit · esc back"))
	return b.String()
}
