package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// menuDecision captures whether to use the full-screen variant menu.
type menuDecision struct {
	useFancy bool
	warning  string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveMenuMode determines whether to show the full-screen menu or the
// plain numbered list.
func resolveMenuMode(mode string, stdout io.Writer) (menuDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		return menuDecision{useFancy: isTerminal(stdout)}, nil
	case "fancy":
		if isTerminal(stdout) {
			return menuDecision{useFancy: true}, nil
		}
		return menuDecision{
			useFancy: false,
			warning:  "Full-screen menu requested but stdout is not a TTY; falling back to the plain menu.",
		}, nil
	case "plain":
		return menuDecision{useFancy: false}, nil
	default:
		return menuDecision{}, fmt.Errorf("invalid menu mode %q (expected auto|fancy|plain)", mode)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
