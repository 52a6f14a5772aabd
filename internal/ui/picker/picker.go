package picker

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the menu and blocks until the user selects a variant or
// cancels. ok is false on cancel. Context cancellation kills the program;
// the caller sees the program error and its own ctx.Err.
func Run(ctx context.Context, in io.Reader, out io.Writer, items []Item) (Item, bool, error) {
	program := tea.NewProgram(
		NewModel(items),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return Item{}, false, fmt.Errorf("variant menu: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return Item{}, false, fmt.Errorf("variant menu: unexpected model %T", final)
	}
	item, ok := model.Selection()
	return item, ok, nil
}
