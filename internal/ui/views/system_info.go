package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBInMemory      bool
	DBExists        bool // true = Found, false = Not Found
	DefaultCurrency string
	AppDataDir      string
	MaxAttempts     int
	HistoryLimit    int
	HistoryDisplay  int
	Reporting       string
	HashPins        bool
	Accounts        int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	switch {
	case data.DBInMemory:
		dbStatus = pterm.Gray("In memory (discarded on exit)")
	case !data.DBExists:
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	historyLimit := fmt.Sprintf("%d entries", data.HistoryLimit)
	if data.HistoryLimit == 0 {
		historyLimit = "Unbounded"
	}

	pinStorage := "bcrypt hash"
	if !data.HashPins {
		pinStorage = pterm.Yellow("plain text")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Journal Path", data.DBPath},
		{"Journal Status", dbStatus},
		{"Default Currency", data.DefaultCurrency},
		{"AppData Directory", data.AppDataDir},
		{"Login Attempts", fmt.Sprintf("%d", data.MaxAttempts)},
		{"History Limit", historyLimit},
		{"History Display", fmt.Sprintf("%d entries", data.HistoryDisplay)},
		{"Error Reporting", data.Reporting},
		{"PIN Storage", pinStorage},
		{"Seeded Accounts", fmt.Sprintf("%d", data.Accounts)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
