package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"anketa/internal/answerlog"
	"anketa/internal/config"
	"anketa/internal/question"
	"anketa/internal/session"
	"anketa/internal/ui"
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) handler {
	return func(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for anketa.yml)")
		menuMode := flags.String("menu", "auto", "Variant menu mode: auto, fancy, or plain")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		// The session engine and the plain menu read whole lines through
		// this reader. The full-screen menu reads stdin directly, which is
		// safe because nothing has been buffered before it runs.
		reader := bufio.NewReader(stdin)

		fmt.Fprintln(stdout, ui.Banner(cfg.Questionnaire.Title))

		variant, ok, code := selectVariant(ctx, cfg, flags.Args(), *menuMode, stdin, reader, stdout, stderr)
		if !ok {
			return code
		}

		questions, err := question.Load(cfg.QuestionsPath(variant))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Loaded %d questions.\n", len(questions))

		log := answerlog.New(cfg.AnswersPath(variant))
		offset, err := log.ResumeOffset()
		if err != nil {
			fmt.Fprintf(stderr, "Warning: could not read existing answers (%v); starting from the beginning.\n", err)
			offset = 0
		}
		if offset >= len(questions) {
			fmt.Fprintf(stderr, "Warning: the answer log ends at question %d but the question set has %d questions; the question set may have changed.\n", offset+1, len(questions))
		}

		engine := session.New(questions, log, reader, stdout)
		switch engine.Run(ctx, offset) {
		case session.Interrupted:
			fmt.Fprintln(stdout, "\nGoodbye! Your progress has been saved.")
		case session.Quit:
			fmt.Fprintln(stdout, "Goodbye!")
		}
		return ExitOK
	}
}

// selectVariant picks the questionnaire to run: by explicit id, implicitly
// when there is only one, or through the menu. The bool reports whether a
// variant was chosen; when false the int is the exit code.
func selectVariant(ctx context.Context, cfg config.Config, args []string, menuMode string, stdin io.Reader, reader *bufio.Reader, stdout, stderr io.Writer) (config.Variant, bool, int) {
	if len(args) == 1 {
		variant, ok := cfg.VariantByID(strings.TrimSpace(args[0]))
		if !ok {
			fmt.Fprintf(stderr, "Unknown questionnaire: %s\n", args[0])
			fmt.Fprintf(stderr, "Available: %s\n", strings.Join(variantIDs(cfg), ", "))
			return config.Variant{}, false, ExitError
		}
		return variant, true, ExitOK
	}
	if len(cfg.Variants) == 1 {
		return cfg.Variants[0], true, ExitOK
	}

	decision, err := resolveMenuMode(menuMode, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		return config.Variant{}, false, ExitUsage
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}

	var (
		variant config.Variant
		chosen  bool
	)
	if decision.useFancy {
		variant, chosen, err = fancyMenu(ctx, cfg, stdin, stdout)
	} else {
		variant, chosen, err = plainMenu(cfg, reader, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Failed to select questionnaire: %v\n", err)
		return config.Variant{}, false, ExitError
	}
	if !chosen {
		fmt.Fprintln(stdout, "No questionnaire selected.")
		return config.Variant{}, false, ExitOK
	}
	return variant, true, ExitOK
}

func variantIDs(cfg config.Config) []string {
	ids := make([]string, 0, len(cfg.Variants))
	for _, variant := range cfg.Variants {
		ids = append(ids, variant.ID)
	}
	return ids
}
