package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Cobra prints the error; only the exit code is ours to set.
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
