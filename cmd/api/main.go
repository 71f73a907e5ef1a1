// Command api serves the question service HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pawerflow/question-service/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
