package cmd

import (
	"os"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, journal path, and session settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.ResolveDBPath(cfg.Database.Path)
	if err != nil {
		dbPath = cfg.Database.Path
	}
	inMemory := store.IsMemoryPath(dbPath)

	dbExists := false
	if !inMemory {
		if _, err := os.Stat(dbPath); err == nil {
			dbExists = true
		}
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          dbPath,
		DBInMemory:      inMemory,
		DBExists:        dbExists,
		DefaultCurrency: cfg.Defaults.Currency,
		AppDataDir:      getAppDataDirOrUnknown(),
		MaxAttempts:     cfg.ATM.MaxAttempts,
		HistoryLimit:    cfg.ATM.HistoryLimit,
		HistoryDisplay:  cfg.ATM.HistoryDisplay,
		Reporting:       cfg.ATM.Reporting,
		HashPins:        cfg.Security.HashPins,
		Accounts:        len(r.app.Service.Account.GetAllAccounts()),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
