package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nsavkin/paperdesk/internal/client/cli"
	"github.com/nsavkin/paperdesk/internal/client/config"
	"github.com/nsavkin/paperdesk/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
