package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"anketa/internal/progress"
)

// runStatus builds the handler for the status command.
func runStatus(cmd *Command) handler {
	return func(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for anketa.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		variants, err := selectedVariants(cfg, flags.Args())
		if err != nil {
			fmt.Fprintf(stderr, "Status failed: %v\n", err)
			return ExitError
		}

		noColor := !isTerminal(stdout)
		if cfg.Questionnaire.Title != "" {
			fmt.Fprintf(stdout, "%s\n\n", stylize(cfg.Questionnaire.Title, noColor, lipgloss.Color("33")))
		}
		for _, summary := range progress.Collect(cfg, variants) {
			id := fmt.Sprintf("%-12s", summary.Variant.ID)
			fmt.Fprintf(stdout, "%s %s\n", stylize(id, noColor, lipgloss.Color("252")), statusLine(summary))
		}
		return ExitOK
	}
}

// statusLine renders one variant's progress for the status listing.
func statusLine(s progress.Summary) string {
	switch {
	case s.QuestionsErr != nil:
		return "questions file missing or unreadable"
	case s.LogErr != nil:
		return fmt.Sprintf("answer log unreadable; a new session starts from question 1 of %d", s.Total)
	case s.Complete():
		return fmt.Sprintf("complete (%d questions)", s.Total)
	case s.Records == 0:
		return fmt.Sprintf("not started (%d questions)", s.Total)
	default:
		return fmt.Sprintf("answered %d of %d, next question %d", s.Distinct, s.Total, s.Resume+1)
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
