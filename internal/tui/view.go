package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.confirmOpen {
		return m.renderConfirm()
	}
	if m.pickerOpen {
		return m.renderPicker()
	}
	if m.detailOpen {
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	if m.semanticMode {
		b.WriteString(m.renderSemanticList())
	} else {
		listStyle := ListStyle
		if m.focused == FocusList {
			listStyle = ListFocusedStyle
		}
		b.WriteString(listStyle.Render(m.docTable.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("DocDeck")
	if m.stats == nil {
		return title
	}
	counters := HelpStyle.Render(fmt.Sprintf(
		"%d documents | %d urgent | %d today",
		m.stats.TotalDocuments, m.stats.UrgentItems, m.stats.DocumentsToday,
	))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", counters)
}

func (m Model) renderFilterBar() string {
	barStyle := FilterBarStyle
	if m.focused == FocusQuery {
		barStyle = FilterBarFocusedStyle
	}

	unit := SelectorStyle
	cat := SelectorStyle
	if m.unitIdx != 0 {
		unit = SelectorActiveStyle
	}
	if m.catIdx != 0 {
		cat = SelectorActiveStyle
	}

	mode := ""
	if m.semanticMode {
		mode = SemanticScoreStyle.Render(" [semantic]")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		m.queryInput.View(),
		mode,
		unit.Render("unit: "+m.orgUnits[m.unitIdx]),
		cat.Render("type: "+m.categories[m.catIdx]),
	)
	return barStyle.Width(max(m.width-2, 20)).Render(row)
}

func (m Model) renderSemanticList() string {
	if len(m.semResults) == 0 {
		empty := HelpStyle.Render("\n  Type a question and press enter.\n")
		return ListFocusedStyle.Width(max(m.width-2, 20)).Render(empty)
	}

	var b strings.Builder
	for i, r := range m.semResults {
		line := fmt.Sprintf("%s  %s", SemanticScoreStyle.Render(fmt.Sprintf("%.3f", r.Similarity)), r.Title)
		if i == m.semCursor {
			line = SemanticSelectedStyle.Render(fmt.Sprintf("%.3f  %s", r.Similarity, r.Title))
		}
		b.WriteString(line)
		b.WriteString("\n")
		if r.Summary != "" {
			b.WriteString(HelpStyle.Render("       " + truncate(r.Summary, max(m.width-10, 20))))
			b.WriteString("\n")
		}
	}
	return ListFocusedStyle.Width(max(m.width-2, 20)).Render(b.String())
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.loading:
		left = StatusLoadingStyle.Render(m.spin.View() + " Loading")
	case m.errMsg != "":
		left = StatusErrorStyle.Render(truncate(m.errMsg, max(m.width-30, 20)))
	case m.status != "":
		left = StatusBarStyle.Render(m.status)
	default:
		left = StatusBarStyle.Render("Ready")
	}

	stale := ""
	if m.store.Stale {
		stale = " " + StaleBadgeStyle.Render("STALE")
	}

	// While stale the page count belongs to a snapshot that no longer
	// exists; only the held total is shown.
	right := StatusBarStyle.Render(fmt.Sprintf("%d match(es)", m.store.Total))
	if !m.store.Stale {
		right = StatusBarStyle.Render(fmt.Sprintf(
			"%d match(es) | page %d/%d", m.store.Total, m.page, max(m.pages, 1),
		))
	}
	return left + stale + "  " + right
}

func (m Model) renderHelp() string {
	if m.semanticMode {
		return HelpStyle.Render("enter: ask | esc: back to browse | ↑/↓: move | q: quit")
	}
	return HelpStyle.Render("/: search | u/t: unit/type | s: star | d: delete | enter: open | o: upload | m: ask | n/p: page | r: refresh | q: quit")
}

func (m Model) renderConfirm() string {
	body := ConfirmTitleStyle.Render("Delete document?") + "\n" +
		truncate(m.confirmTitle, 50) + "\n\n" +
		HelpStyle.Render("y: delete    n: cancel")
	dialog := ConfirmDialogStyle.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (m Model) renderPicker() string {
	header := TitleStyle.Render("Select a file to upload") + "\n" +
		HelpStyle.Render("enter: select | esc: cancel") + "\n\n"
	return header + m.picker.View()
}

func (m Model) renderDetail() string {
	header := DetailTitleStyle.Render(m.detailDoc.Title)
	if m.detailStale {
		header += "  " + StaleBadgeStyle.Render("no longer in the current results")
	}
	footer := HelpStyle.Render("esc: close | ↑/↓: scroll")
	body := DetailStyle.Width(max(m.width-4, 20)).Render(
		header + "\n\n" + m.detailView.View(),
	)
	return body + "\n" + footer
}

// renderDetailContent builds the scrollable body of the detail view from
// the currently resolved record.
func (m *Model) renderDetailContent() string {
	doc := m.detailDoc
	var b strings.Builder

	write := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(HelpStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	write("Status", RenderStatus(doc.Status))
	write("Unit", doc.OrgUnit)
	write("Category", doc.Category)
	write("Date", doc.Date)
	write("Language", doc.Language)
	write("Source", doc.Source)
	if doc.Starred {
		write("Starred", "yes")
	}
	if len(doc.Tags) > 0 {
		write("Tags", strings.Join(doc.Tags, ", "))
	}

	b.WriteString("\n")
	b.WriteString(doc.Summary)
	b.WriteString("\n")

	if doc.Content != "" {
		b.WriteString("\n")
		b.WriteString(DetailTitleStyle.Render("Extracted text"))
		b.WriteString("\n")
		b.WriteString(doc.Content)
		b.WriteString("\n")
	}

	for _, t := range doc.Tables {
		b.WriteString("\n")
		caption := t.Caption
		if caption == "" {
			caption = "Table"
		}
		b.WriteString(DetailTitleStyle.Render(caption))
		b.WriteString("\n")
		for i, row := range t.Data {
			line := strings.Join(row, " | ")
			b.WriteString(line)
			b.WriteString("\n")
			if i == 0 {
				b.WriteString(strings.Repeat("-", len(line)))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// tableColumns lays the document table out for the given width. The title
// column absorbs whatever the fixed columns leave over.
func (m *Model) tableColumns(width int) []table.Column {
	fixed := 2 + 14 + 18 + 10 + 12 + 10 // star, unit, category, status, date, padding
	titleWidth := max(width-fixed, 20)
	return []table.Column{
		{Title: " ", Width: 2},
		{Title: "Title", Width: titleWidth},
		{Title: "Unit", Width: 14},
		{Title: "Category", Width: 18},
		{Title: "Status", Width: 10},
		{Title: "Date", Width: 12},
	}
}

// syncTable rebuilds the table rows from the current snapshot and clamps
// the cursor.
func (m *Model) syncTable() {
	rows := make([]table.Row, 0, len(m.store.Items))
	for _, doc := range m.store.Items {
		star := " "
		if doc.Starred {
			star = "*"
		}
		rows = append(rows, table.Row{
			star,
			doc.Title,
			doc.OrgUnit,
			doc.Category,
			doc.Status,
			truncate(doc.Date, 10),
		})
	}
	m.docTable.SetRows(rows)
	if cursor := m.docTable.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.docTable.SetCursor(len(rows) - 1)
	}
}

func (m *Model) resize() {
	m.queryInput.Width = max(m.width/3, 20)
	m.docTable.SetColumns(m.tableColumns(m.width - 4))
	m.docTable.SetWidth(m.width - 2)
	m.docTable.SetHeight(max(m.height-9, 3))
	m.detailView.Width = max(m.width-8, 20)
	m.detailView.Height = max(m.height-8, 3)
	if m.height > 10 {
		m.picker.Height = m.height - 8
	}
}

// truncate clips s to n display cells without splitting a rune.
func truncate(s string, n int) string {
	if n <= 3 {
		return runewidth.Truncate(s, n, "")
	}
	return runewidth.Truncate(s, n, "...")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
