package journal

import (
	"github.com/hance08/teller/internal/app"
	"github.com/spf13/cobra"
)

func NewJournalCmd(application *app.App) *cobra.Command {
	journalCmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j"},
		Short:   "Inspect the audit journal of transactions and login attempts.",
		Long: `Inspect the audit journal of transactions and login attempts.

The journal is kept in memory by default, so it only has content when
database.path points at a file written by earlier sessions.`,
	}

	journalCmd.AddCommand(NewListCmd(application))

	return journalCmd
}
