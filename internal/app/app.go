package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp opens the journal, seeds the ledger and returns the App with a
// cleanup func that closes the journal.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPath, err := ResolveDBPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Log.WithError(err).Error("Error closing DB")
		}
	}

	svc, err := service.NewService(dbStore, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

// ResolveDBPath expands "~" and falls back to teller.db in the app data
// directory when no path is configured.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, "teller.db"), nil
	}

	if store.IsMemoryPath(raw) {
		return raw, nil
	}

	return ExpandPath(raw)
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if path[1] == '/' || path[1] == '\\' {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
