package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"anketa/internal/cli"
)

// main launches anketa.
func main() {
	os.Exit(run())
}

// run executes the command line and returns an exit code. Interrupt
// signals cancel the context so a running session can say goodbye and
// leave the answer log clean.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
