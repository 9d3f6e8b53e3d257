package journal

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Account string
	Limit   int
	Logins  bool
}

type listRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent journal entries",
		Long: `List recent journal entries, newest first.

By default this shows deposits, withdrawals and opening balances. Use
--logins to show login attempts instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Filter entries by account number")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of entries to display (0 for all)")
	cmd.Flags().BoolVar(&flags.Logins, "logins", false, "Show login attempts instead of transactions")

	return cmd
}

func (r *listRunner) Run() error {
	journal := r.app.Service.Journal

	if r.flags.Logins {
		events, err := journal.GetLoginEvents(r.flags.Limit)
		if err != nil {
			return err
		}
		return views.NewLoginEventListView().Render(events, r.flags.Limit)
	}

	entries, err := journal.GetEntries(r.flags.Account, r.flags.Limit)
	if err != nil {
		return err
	}

	if r.flags.Account != "" {
		pterm.Info.Printf("Showing journal entries for account: %s\n\n", r.flags.Account)
	}

	return views.NewJournalListView().Render(entries, r.flags.Limit)
}
