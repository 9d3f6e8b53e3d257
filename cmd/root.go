package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/cmd/journal"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// filled in by PersistentPreRunE once flags are parsed
	application := &app.App{}
	var cleanup func()

	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a terminal ATM simulator",
		Long: `teller is a terminal ATM simulator.

Log in with an account number and PIN, then check your balance, deposit,
withdraw and review recent transactions. Running teller without a
subcommand starts a session.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			closeLog, err := logger.Init(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}

			a, closeApp, err := app.NewApp(cfg, migrations)
			if err != nil {
				_ = closeLog()
				return err
			}

			*application = *a
			cleanup = func() {
				closeApp()
				_ = closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newSessionRunner(application).Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewSessionCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(journal.NewJournalCmd(application))

	err := rootCmd.Execute()
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		errhandler.HandleError(err)
	}
}

func initConfig() error {
	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("TELLER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	// a fresh struct, so configured accounts replace the seeds instead of
	// merging into them
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return validation.ValidateConfig(cfg)
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
