package views

import (
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

type HistoryView struct {
	currency string
}

func NewHistoryView(currency string) *HistoryView {
	return &HistoryView{currency: currency}
}

// Render shows entries oldest first. total is how many entries the
// account holds, which may exceed what is shown.
func (v *HistoryView) Render(entries []ledger.Transaction, total int) error {
	pterm.Println()
	ui.PrintL2Title("Transaction History")

	if len(entries) == 0 {
		pterm.Warning.Println("No transactions yet")
		return nil
	}

	tableData := pterm.TableData{
		{"Type", "Amount", "Balance After", "Time"},
	}

	for _, tx := range entries {
		amount := utils.FormatAmount(tx.Amount, v.currency)
		kind := string(tx.Kind)

		switch tx.Kind {
		case ledger.KindDeposit:
			kind = pterm.Green(kind)
			amount = pterm.Green(amount)
		case ledger.KindWithdrawal:
			kind = pterm.Red(kind)
			amount = pterm.Red(amount)
		default:
			kind = pterm.Gray(kind)
		}

		tableData = append(tableData, []string{
			kind,
			amount,
			utils.FormatAmount(tx.BalanceAfter, v.currency),
			tx.Timestamp.Format(constants.TimestampFormat),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Showing %d of %d transactions\n", len(entries), total)
	return nil
}
