package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testItems() []Item {
	return []Item{
		{ID: "spanish", Label: "Spanish", Total: 600, Answered: 42, Next: 43},
		{ID: "german", Label: "German", Total: 600, Answered: 0, Next: 1},
	}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// TestSelectionFollowsCursor verifies enter picks the highlighted row.
func TestSelectionFollowsCursor(t *testing.T) {
	m := NewModel(testItems())
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	item, ok := m.Selection()
	if !ok {
		t.Fatalf("expected a selection")
	}
	if item.ID != "german" {
		t.Fatalf("expected german, got %q", item.ID)
	}
}

// TestCancelClearsSelection verifies q leaves the menu with no choice.
func TestCancelClearsSelection(t *testing.T) {
	m := NewModel(testItems())
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if _, ok := m.Selection(); ok {
		t.Fatalf("expected no selection after cancel")
	}
}

// TestViewListsVariants verifies the table renders every label.
func TestViewListsVariants(t *testing.T) {
	m := NewModel(testItems())
	view := m.View()
	if !strings.Contains(view, "Spanish") || !strings.Contains(view, "German") {
		t.Fatalf("expected variant labels in view, got %q", view)
	}
	if !strings.Contains(view, "Choose a questionnaire") {
		t.Fatalf("expected title in view, got %q", view)
	}
}
