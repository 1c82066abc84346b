package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"studymate-agent/handler"
	"studymate-agent/internal/app"
	"studymate-agent/internal/config"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.LogLevel)

	// ---- Clients ----
	studyService, err := app.NewStudyService(ctx, cfg, app.SSMGetter, logger)
	if err != nil {
		logger.Error("failed to create study service", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	h, err := handler.NewHandler(studyService)
	if err != nil {
		logger.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
