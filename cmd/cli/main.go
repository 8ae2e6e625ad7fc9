package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joanaapp/joana-cli/internal/client/cli"
	"github.com/joanaapp/joana-cli/internal/client/config"
	"github.com/joanaapp/joana-cli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	// keep the REPL output clean, diagnostics go to stderr
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
