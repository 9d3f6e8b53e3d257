package cmd

import (
	"context"
	"errors"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/atm"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/ui/console"
	"github.com/spf13/cobra"
)

type sessionRunner struct {
	app *app.App
}

func newSessionRunner(application *app.App) *sessionRunner {
	return &sessionRunner{app: application}
}

func NewSessionCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "session",
		Aliases: []string{"start"},
		Short:   "Start an interactive ATM session",
		Long: `Start an interactive ATM session.

You have a limited number of attempts to enter a valid account number and
PIN. After that the card is blocked and the session ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newSessionRunner(application).Run(cmd.Context())
		},
	}
}

func (r *sessionRunner) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	svc := r.app.Service
	term := console.New(svc.Config.Defaults.Currency)

	machine := atm.NewMachine(svc.Account, term, term, atm.Options{
		HistoryDisplay: svc.Config.ATM.HistoryDisplay,
		Reporting:      svc.Config.ATM.Reporting,
	})

	err := machine.Run(ctx)
	if errors.Is(err, ledger.ErrLocked) {
		// already shown to the user
		return nil
	}
	return err
}
