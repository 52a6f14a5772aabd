package picker

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Item is one selectable questionnaire variant with its progress numbers.
type Item struct {
	ID       string
	Label    string
	Total    int
	Answered int
	// Next is the one-based number of the question the session would ask
	// first.
	Next int
}

// defaultColumns returns the menu columns.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Questionnaire", Width: 28},
		{Title: "Questions", Width: 10},
		{Title: "Answered", Width: 9},
		{Title: "Next", Width: 5},
	}
}

// rowsForItems converts menu items into table rows.
func rowsForItems(items []Item) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{
			item.Label,
			strconv.Itoa(item.Total),
			strconv.Itoa(item.Answered),
			strconv.Itoa(item.Next),
		})
	}
	return rows
}

// tableStyles returns the menu table styles.
func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	return styles
}
