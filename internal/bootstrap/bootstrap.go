package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lexidocs/lexi-cli/internal/config"
	"github.com/lexidocs/lexi-cli/internal/core/usecase"
	"github.com/lexidocs/lexi-cli/internal/infrastructure/backend"
	"github.com/lexidocs/lexi-cli/internal/infrastructure/localstore"
	"github.com/lexidocs/lexi-cli/internal/observability/metrics"
)

type App struct {
	Config   config.Config
	Log      *slog.Logger
	Metrics  *metrics.ClientMetrics
	Workflow *usecase.Workflow
}

func New(cfg config.Config, log *slog.Logger) (*App, error) {
	clientMetrics := metrics.NewClientMetrics("lexi")

	store, err := localstore.New(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("init local store: %w", err)
	}

	gateway, err := backend.New(cfg.BackendURL,
		time.Duration(cfg.RequestTimeout)*time.Second,
		backend.WithLogger(log),
		backend.WithObserver(clientMetrics),
	)
	if err != nil {
		return nil, fmt.Errorf("init backend client: %w", err)
	}

	session := usecase.NewSessionUseCase(gateway, store, store, log)
	registry := usecase.NewRegistry(gateway, store, log)
	workflow := usecase.NewWorkflow(session, registry, gateway, gateway, store, log,
		usecase.WithTransitionObserver(clientMetrics))

	return &App{
		Config:   cfg,
		Log:      log,
		Metrics:  clientMetrics,
		Workflow: workflow,
	}, nil
}
