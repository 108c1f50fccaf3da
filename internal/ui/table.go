package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sentinelRow is rendered when a list snapshot is empty. The store degrades
// read faults to an empty snapshot, so a bare store and a failed refresh are
// indistinguishable here; the single sentinel covers both.
const sentinelRow = "no rows (empty store or read error)"

// renderTable lays out a header and rows as padded columns, highlighting the
// selected row and, within it, the selected cell.
func renderTable(headers []string, rows [][]string, selRow, selCol int) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	var head []string
	for i, h := range headers {
		head = append(head, pad(h, widths[i]))
	}
	b.WriteString(styleTableHeader.Render(strings.Join(head, "  ")))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(styleError.Render(sentinelRow))
		b.WriteString("\n")
		return b.String()
	}

	for r, row := range rows {
		var cells []string
		for c, cell := range row {
			text := pad(cell, widths[c])
			switch {
			case r == selRow && c == selCol:
				text = styleSelectedCell.Render(text)
			case r == selRow:
				text = styleSelectedRow.Render(text)
			}
			cells = append(cells, text)
		}
		if r == selRow {
			b.WriteString(">> ")
		} else {
			b.WriteString("   ")
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// pad right-fills to a display width, so multi-byte cells line up.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// clampCursor keeps a selection inside [0, n-1], settling on 0 for empty
// tables.
func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
