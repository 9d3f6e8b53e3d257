package account

import (
	"github.com/hance08/teller/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Show the accounts loaded from the configuration.",
		Long:  `Show the accounts loaded from the configuration.`,
	}

	accountCmd.AddCommand(NewListCmd(application))

	return accountCmd
}
