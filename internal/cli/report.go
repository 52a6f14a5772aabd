package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"anketa/internal/report"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) handler {
	return func(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for anketa.yml)")
		outPath := flags.String("output", report.DefaultFileName, "Path for the rendered HTML report")
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
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}

		data := report.Collect(cfg, variants)
		if err := report.WriteFile(ctx, *outPath, data); err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", *outPath)
		return ExitOK
	}
}
