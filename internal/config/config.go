package config

import "github.com/hance08/teller/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ATM        ATMConfig      `mapstructure:"atm"`
	Security   SecurityConfig `mapstructure:"security"`
	Log        LogConfig      `mapstructure:"log"`
	Accounts   []AccountSeed  `mapstructure:"accounts" validate:"required,min=1,unique=ID,dive"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	// Path of the audit journal. ":memory:" keeps it for the current run only.
	Path string `mapstructure:"path" validate:"required"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency" validate:"required,len=3,alpha"`
}

type ATMConfig struct {
	MaxAttempts    int    `mapstructure:"max_attempts" validate:"min=1,max=10"`
	HistoryLimit   int    `mapstructure:"history_limit" validate:"min=0"`
	HistoryDisplay int    `mapstructure:"history_display" validate:"min=1"`
	RecordOpening  bool   `mapstructure:"record_opening"`
	Reporting      string `mapstructure:"reporting" validate:"oneof=detailed generic"`
}

type SecurityConfig struct {
	HashPins   bool `mapstructure:"hash_pins"`
	BcryptCost int  `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	File  string `mapstructure:"file"`
}

// AccountSeed is one account created when the session starts.
type AccountSeed struct {
	ID      string `mapstructure:"id" validate:"required,numeric,max=20"`
	Holder  string `mapstructure:"holder" validate:"required,max=100"`
	PIN     string `mapstructure:"pin" validate:"required,numeric,min=4,max=12"`
	Balance string `mapstructure:"balance" validate:"required,numeric"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ":memory:"},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		ATM: ATMConfig{
			MaxAttempts:    constants.DefaultMaxAttempts,
			HistoryLimit:   constants.DefaultHistoryLimit,
			HistoryDisplay: constants.DefaultHistoryDisplay,
			RecordOpening:  false,
			Reporting:      constants.ReportingDetailed,
		},
		Security: SecurityConfig{
			HashPins:   true,
			BcryptCost: constants.DefaultBcryptCost,
		},
		Log: LogConfig{Level: "warn"},
		Accounts: []AccountSeed{
			{ID: "12345", Holder: "John Doe", PIN: "1234", Balance: "10000.00"},
			{ID: "67890", Holder: "Jane Smith", PIN: "5678", Balance: "25000.00"},
			{ID: "11111", Holder: "Bob Johnson", PIN: "9999", Balance: "5000.00"},
		},
	}
}

// Defaults flattens NewDefault into viper keys so a fresh config file lists
// every setting.
func Defaults() map[string]any {
	def := NewDefault()

	seeds := make([]map[string]any, 0, len(def.Accounts))
	for _, a := range def.Accounts {
		seeds = append(seeds, map[string]any{
			"id":      a.ID,
			"holder":  a.Holder,
			"pin":     a.PIN,
			"balance": a.Balance,
		})
	}

	return map[string]any{
		"database.path":        def.Database.Path,
		"defaults.currency":    def.Defaults.Currency,
		"atm.max_attempts":     def.ATM.MaxAttempts,
		"atm.history_limit":    def.ATM.HistoryLimit,
		"atm.history_display":  def.ATM.HistoryDisplay,
		"atm.record_opening":   def.ATM.RecordOpening,
		"atm.reporting":        def.ATM.Reporting,
		"security.hash_pins":   def.Security.HashPins,
		"security.bcrypt_cost": def.Security.BcryptCost,
		"log.level":            def.Log.Level,
		"log.file":             def.Log.File,
		"accounts":             seeds,
	}
}
