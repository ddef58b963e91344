package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}
