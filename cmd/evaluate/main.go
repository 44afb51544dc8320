package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yyu399/goal-model-v3.1/internal/delivery/cli"
	"github.com/yyu399/goal-model-v3.1/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := os.Getenv("INPLAY_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger := logging.NewWithOutput(level, "text", os.Stderr)

	os.Exit(cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, logger))
}
