package views

import (
	"fmt"

	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*ledger.Account, currency string) error {
	headers := []string{"Account", "Holder", "Balance", "History"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := utils.FormatAmount(acc.Balance(), currency)

		coloredBalance := pterm.Green(balance)
		if acc.Balance().IsZero() {
			coloredBalance = pterm.Gray(balance)
		}

		tableData = append(tableData, []string{
			acc.ID(),
			acc.HolderName(),
			coloredBalance,
			fmt.Sprintf("%d", acc.HistoryLen()),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
