package console

import (
	"github.com/hance08/teller/internal/atm"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/shopspring/decimal"
)

// Console is the interactive terminal for an ATM session: huh and survey
// prompts for input, pterm views for output.
type Console struct {
	currency string
	history  *views.HistoryView
}

var (
	_ atm.Terminal = (*Console)(nil)
	_ atm.Display  = (*Console)(nil)
)

func New(currency string) *Console {
	return &Console{
		currency: currency,
		history:  views.NewHistoryView(currency),
	}
}

func (c *Console) AccountNumber() (string, error) {
	return prompts.PromptAccountNumber()
}

func (c *Console) PIN() (string, error) {
	return prompts.PromptPIN()
}

func (c *Console) MenuChoice() (string, error) {
	return prompts.PromptMenuChoice()
}

func (c *Console) Amount(op atm.Option) (string, error) {
	verb := "deposit"
	if op == atm.Withdraw {
		verb = "withdraw"
	}
	return prompts.PromptTransactionAmount(verb)
}

func (c *Console) Welcome() {
	views.RenderWelcome()
}

func (c *Console) LoginSucceeded(holderName string) {
	views.RenderLoginSuccess(holderName)
}

func (c *Console) LoginFailed(remaining int) {
	views.RenderLoginFailure(remaining)
}

func (c *Console) Locked() {
	views.RenderLocked()
}

func (c *Console) Menu(options []atm.Option) {
	views.RenderMenu(options)
}

func (c *Console) Balance(id, holderName string, balance decimal.Decimal) {
	c.render(views.RenderBalance(id, holderName, balance, c.currency))
}

func (c *Console) Deposited(amount, balance decimal.Decimal) {
	c.render(views.RenderTransactionSuccess("Deposit", "Deposited", amount, balance, c.currency))
}

func (c *Console) Withdrew(amount, balance decimal.Decimal) {
	c.render(views.RenderTransactionSuccess("Withdrawal", "Withdrawn", amount, balance, c.currency))
}

func (c *Console) History(entries []ledger.Transaction, total int) {
	c.render(c.history.Render(entries, total))
}

func (c *Console) Error(err error) {
	views.RenderError(err)
}

func (c *Console) Goodbye() {
	views.RenderGoodbye()
}

// render only logs table failures; the session goes on without the table.
func (c *Console) render(err error) {
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to render view")
	}
}

