package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"anketa/internal/export"
)

// DefaultDBFileName is where the export command writes its database.
const DefaultDBFileName = "anketa.duckdb"

// runExport builds the handler for the export command.
func runExport(cmd *Command) handler {
	return func(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for anketa.yml)")
		dbPath := flags.String("db", DefaultDBFileName, "Path to the DuckDB database file")
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
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}

		db, err := export.Open(ctx, *dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		if err := export.EnsureSchema(db); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}

		result, err := export.Ingest(ctx, db, cfg, variants)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}

		for _, variant := range result.Variants {
			fmt.Fprintf(stdout, "%-12s %d records\n", variant.VariantID, variant.Records)
		}
		fmt.Fprintf(stdout, "Imported %d records into %s (import %s)\n", result.Total, *dbPath, result.ImportID)
		return ExitOK
	}
}
