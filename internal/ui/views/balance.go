package views

import (
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderBalance(id, holderName string, balance decimal.Decimal, currency string) error {
	pterm.Println()
	ui.PrintL2Title("Balance Inquiry")

	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), id},
		{pterm.Blue("Account Holder"), holderName},
		{pterm.Blue("Current Balance"), pterm.Green(utils.FormatAmount(balance, currency))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderTransactionSuccess reports a completed deposit or withdrawal.
func RenderTransactionSuccess(title, label string, amount, balance decimal.Decimal, currency string) error {
	ui.Separator()
	pterm.Success.Printf("%s successful!\n", title)

	tableData := pterm.TableData{
		{pterm.Blue(label), utils.FormatAmount(amount, currency)},
		{pterm.Blue("New Balance"), utils.FormatAmount(balance, currency)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
