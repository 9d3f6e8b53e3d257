package account

import (
	"strings"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Holder string
}

type ListCommandRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their balances",
		Long: `List the seeded accounts with their opening balances.
PINs are never shown. You can filter by holder name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Holder, "holder", "", "Only show accounts whose holder name contains this text")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	svc := r.app.Service

	accounts := svc.Account.GetAllAccounts()
	if r.flags.Holder != "" {
		accounts = filterByHolder(accounts, r.flags.Holder)
	}

	return views.NewAccountListView().Render(accounts, svc.Config.Defaults.Currency)
}

func filterByHolder(accounts []*ledger.Account, holder string) []*ledger.Account {
	needle := strings.ToLower(holder)

	var filtered []*ledger.Account
	for _, acc := range accounts {
		if strings.Contains(strings.ToLower(acc.HolderName()), needle) {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
