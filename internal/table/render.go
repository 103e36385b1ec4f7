package table

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const maxCellWidth = 32

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	editStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Render draws the current page as plain terminal text: title, mode tabs,
// header, rows, and a footer with the pagination summary. A row under edit
// shows the scratch values; an armed delete appends a confirmation prompt.
func (m *Model) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  [%s mode]", m.mode)))
	if m.search != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  search: %q", m.search)))
	}
	b.WriteString("\n")

	widths := m.columnWidths()

	header := make([]string, 0, len(m.columns)+1)
	header = append(header, pad("ID", widths["ID"]))
	for _, col := range m.columns {
		header = append(header, pad(col.Label, widths[col.Key]))
	}
	b.WriteString(headerStyle.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	visible := m.VisibleRows()
	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No data found"))
		b.WriteString("\n")
	}
	for _, row := range visible {
		cells := make([]string, 0, len(m.columns)+1)
		cells = append(cells, pad(truncate(row.ID), widths["ID"]))
		editing := m.mode == ModeEdit && m.editingID == row.ID
		for _, col := range m.columns {
			v := row.Fields[col.Key]
			if editing {
				v = m.scratch[col.Key]
			}
			cells = append(cells, pad(truncate(v), widths[col.Key]))
		}
		line := strings.Join(cells, "  ")
		switch {
		case editing:
			line = editStyle.Render(line + "  (editing)")
		case m.mode == ModeDelete && m.deleteID == row.ID:
			line = dangerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(len(visible)))

	if m.deleteID != "" {
		b.WriteString(dangerStyle.Render(
			fmt.Sprintf("Delete %s? This cannot be undone. Type 'confirm' or 'cancel'.", m.deleteID)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) renderFooter(visibleCount int) string {
	filtered := len(m.Filtered())
	start := 0
	if visibleCount > 0 {
		start = (m.page-1)*PageSize + 1
	}
	end := (m.page-1)*PageSize + visibleCount

	totalPages := m.TotalPages()
	if totalPages < 1 {
		totalPages = 1
	}
	return mutedStyle.Render(fmt.Sprintf(
		"Showing %d to %d of %d    page %d of %d\n", start, end, filtered, m.page, totalPages))
}

func (m *Model) columnWidths() map[string]int {
	widths := map[string]int{"ID": runewidth.StringWidth("ID")}
	for _, row := range m.VisibleRows() {
		if w := runewidth.StringWidth(truncate(row.ID)); w > widths["ID"] {
			widths["ID"] = w
		}
	}
	for _, col := range m.columns {
		w := runewidth.StringWidth(col.Label)
		for _, row := range m.VisibleRows() {
			if cw := runewidth.StringWidth(truncate(row.Fields[col.Key])); cw > w {
				w = cw
			}
		}
		widths[col.Key] = w
	}
	return widths
}

// Cell metrics are display widths, not byte counts, so multibyte and
// wide (CJK) content keeps columns aligned.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string) string {
	return runewidth.Truncate(s, maxCellWidth, "...")
}
