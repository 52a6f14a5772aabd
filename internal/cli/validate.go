package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"anketa/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) handler {
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
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintln(stdout, "Config OK")
		ok := true
		for _, variant := range cfg.Variants {
			questions, err := question.Load(cfg.QuestionsPath(variant))
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", variant.ID, err)
				ok = false
				continue
			}
			fmt.Fprintf(stdout, "%s: %d questions\n", variant.ID, len(questions))
		}
		if !ok {
			return ExitError
		}
		return ExitOK
	}
}
