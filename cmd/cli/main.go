package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dkurbatov/filevault/internal/buildinfo"
	"github.com/dkurbatov/filevault/internal/cli"
	"github.com/dkurbatov/filevault/internal/config"
	"github.com/dkurbatov/filevault/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
