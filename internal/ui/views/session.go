package views

import (
	"fmt"

	"github.com/hance08/teller/internal/atm"
	"github.com/hance08/teller/internal/ui"
	"github.com/pterm/pterm"
)

func RenderWelcome() {
	ui.Banner("Teller", "Welcome to the Teller ATM")
	pterm.Println()
}

func RenderLoginSuccess(holderName string) {
	pterm.Println()
	pterm.Success.Println("Authentication successful!")
	pterm.Info.Printf("Welcome, %s!\n", holderName)
}

// RenderLoginFailure never says which of the two values was wrong.
func RenderLoginFailure(remaining int) {
	pterm.Println()
	pterm.Error.Println("Invalid account number or PIN.")
	pterm.Warning.Printf("Attempts remaining: %d\n", remaining)
	pterm.Println()
}

func RenderLocked() {
	pterm.Println()
	pterm.Error.Println("Too many failed attempts. Your card has been blocked.")
	pterm.Info.Println("Please contact your bank for assistance.")
}

func RenderMenu(options []atm.Option) {
	pterm.Println()
	ui.PrintL1Title("MAIN MENU")

	items := make([]pterm.BulletListItem, 0, len(options))
	for _, opt := range options {
		items = append(items, pterm.BulletListItem{
			Level:  0,
			Text:   opt.String(),
			Bullet: fmt.Sprintf("%d.", int(opt)),
		})
	}

	_ = pterm.DefaultBulletList.WithItems(items).Render()
}

func RenderGoodbye() {
	pterm.Println()
	ui.Banner("Teller", "Thank you for using Teller!", "Have a great day!")
}
