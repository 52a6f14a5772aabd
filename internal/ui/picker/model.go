// Package picker is the interactive variant menu: a table of playable
// questionnaires with their progress, navigated with the arrow keys.
package picker

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Model drives the menu. The zero value is not usable; build it with
// NewModel.
type Model struct {
	table    table.Model
	items    []Item
	selected int
}

// NewModel constructs a menu over the given items.
func NewModel(items []Item) Model {
	height := len(items)
	if height > 12 {
		height = 12
	}
	if height < 1 {
		height = 1
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rowsForItems(items)),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(tableStyles())
	return Model{
		table:    t,
		items:    items,
		selected: -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles selection, cancellation, and table navigation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		height := typed.Height - 4
		if height < 1 {
			height = 1
		}
		m.table.SetHeight(height)
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "enter":
			m.selected = m.table.Cursor()
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.selected = -1
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m Model) View() string {
	title := titleStyle.Render("Choose a questionnaire")
	help := helpStyle.Render("up/down: move  enter: select  q: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.table.View(), help)
}

// Selection returns the chosen item; ok is false when the menu was
// cancelled.
func (m Model) Selection() (Item, bool) {
	if m.selected < 0 || m.selected >= len(m.items) {
		return Item{}, false
	}
	return m.items[m.selected], true
}
