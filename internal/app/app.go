package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/smallworld/txstats/internal/config"
	"github.com/smallworld/txstats/internal/constants"
	"github.com/smallworld/txstats/internal/service"
	"github.com/smallworld/txstats/internal/store"
)

type App struct {
	Service    *service.Service
	Source     store.Source
	SourcePath string
}

// NewApp opens the configured source, loads the snapshot and builds the service.
func NewApp(ctx context.Context, cfg *config.Config, migrationFS fs.FS, logger *slog.Logger) (*App, func(), error) {
	sourcePath, err := SourcePath(cfg)
	if err != nil {
		return nil, nil, err
	}

	src, err := store.Open(cfg.Source.Driver, sourcePath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open transaction source: %w", err)
	}

	start := time.Now()
	txs, err := src.Transactions(ctx)
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	logger.Info("transactions loaded",
		"driver", cfg.Source.Driver,
		"path", sourcePath,
		"records", len(txs),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	svc := service.NewService(txs, cfg, logger)

	cleanup := func() {
		if err := src.Close(); err != nil {
			logger.Error("failed to close transaction source", "error", err)
		}
	}

	return &App{
		Service:    svc,
		Source:     src,
		SourcePath: sourcePath,
	}, cleanup, nil
}

// OpenSnapshotStore opens the SQLite snapshot regardless of the configured driver.
func OpenSnapshotStore(cfg *config.Config, migrationFS fs.FS) (*store.SQLiteStore, error) {
	dbPath, err := DatabasePath(cfg)
	if err != nil {
		return nil, err
	}

	s, err := store.NewSQLiteStore(dbPath, migrationFS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return s, nil
}

// SourcePath resolves the file the configured driver reads from.
func SourcePath(cfg *config.Config) (string, error) {
	if cfg.Source.Driver == constants.DriverSQLite {
		return DatabasePath(cfg)
	}
	return ExpandPath(cfg.Source.Path)
}

func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path)
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, constants.DBFileName), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
