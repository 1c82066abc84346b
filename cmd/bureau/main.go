package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"studymate-agent/internal/agent"
	"studymate-agent/internal/agents"
	"studymate-agent/internal/app"
	"studymate-agent/internal/config"
	"studymate-agent/internal/harness"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	studyService, err := app.NewStudyService(ctx, cfg, app.SSMGetter, logger)
	if err != nil {
		logger.Error("failed to create study service", "err", err)
		os.Exit(1)
	}

	hosted, err := agents.New(studyService)
	if err != nil {
		logger.Error("failed to create agents", "err", err)
		os.Exit(1)
	}
	if cfg.Harness.Enabled {
		h, err := harness.NewAgent(harness.NewDriver(harness.DefaultTargets()), cfg.Harness.Interval)
		if err != nil {
			logger.Error("failed to create harness agent", "err", err)
			os.Exit(1)
		}
		hosted = append(hosted, h)
	}

	bureau := agent.NewBureau(logger)
	for _, a := range hosted {
		if err := bureau.Add(a); err != nil {
			logger.Error("failed to add agent", "agent", a.Name(), "err", err)
			os.Exit(1)
		}
	}

	if err := bureau.Run(ctx); err != nil {
		logger.Error("bureau stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("bureau stopped")
}
