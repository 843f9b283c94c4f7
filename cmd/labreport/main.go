package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(defaultDeps(os.Stdout, os.Stderr))
	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("labreport failed", "error", err)
		os.Exit(1)
	}
}
