package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/accrue/internal/config"
	"github.com/hance08/accrue/internal/interest"
	"github.com/hance08/accrue/internal/logging"
	"github.com/hance08/accrue/internal/service"
	"github.com/hance08/accrue/internal/store"
	"go.uber.org/zap"
)

const appName = "accrue"

type App struct {
	Service *service.Service
	Store   store.Repository
	Config  *config.Config
	Logger  *zap.Logger
}

// NewApp builds the logger, opens the journal database and wires the
// services, then returns App entity with its cleanup func
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	dbStore, err := store.NewStore(cfg.Database.Name, migrationFS)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, service.Config{
		Interest: interest.Config{
			DaysInYear: cfg.Interest.DaysInYear,
			Scale:      cfg.Interest.Scale,
		},
	}, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
		_ = logger.Sync()
	}

	if cfg.Defaults.SeedDemo {
		if err := svc.SeedDemo(); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	logger.Debug("application ready",
		zap.String("database", cfg.Database.Name),
		zap.Bool("seed_demo", cfg.Defaults.SeedDemo))

	return &App{
		Service: svc,
		Store:   dbStore,
		Config:  cfg,
		Logger:  logger,
	}, cleanup, nil
}

// AppDataDir is where config.yaml lives.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appName), nil
	}

	return filepath.Join(configDir, appName), nil
}
