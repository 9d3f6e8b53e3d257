package views

import (
	"fmt"
	"time"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/store"
	"github.com/pterm/pterm"
)

type JournalListView struct{}

func NewJournalListView() *JournalListView {
	return &JournalListView{}
}

func (v *JournalListView) Render(entries []*store.JournalEntry, limit int) error {
	if len(entries) == 0 {
		pterm.Warning.Println("No journal entries found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent journal entries (limit: %s)", limitLabel(limit))

	tableData := pterm.TableData{
		{"ID", "Time", "Account", "Kind", "Amount", "Balance After", "Entry"},
	}

	for _, e := range entries {
		kind, amount := e.Kind, e.Amount

		switch e.Kind {
		case "Deposit":
			kind = pterm.Green(kind)
			amount = pterm.Green(amount)
		case "Withdrawal":
			kind = pterm.Red(kind)
			amount = pterm.Red(amount)
		default:
			kind = pterm.Gray(kind)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", e.ID),
			formatMillis(e.Timestamp),
			e.AccountID,
			kind,
			amount,
			e.BalanceAfter,
			e.EntryID,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d entries\n", len(entries))
	return nil
}

type LoginEventListView struct{}

func NewLoginEventListView() *LoginEventListView {
	return &LoginEventListView{}
}

func (v *LoginEventListView) Render(events []*store.LoginEvent, limit int) error {
	if len(events) == 0 {
		pterm.Warning.Println("No login attempts recorded")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent login attempts (limit: %s)", limitLabel(limit))

	tableData := pterm.TableData{
		{"ID", "Time", "Account", "Outcome", "Remaining"},
	}

	for _, ev := range events {
		outcome := ev.Outcome
		switch ev.Outcome {
		case store.OutcomeAuthenticated:
			outcome = pterm.Green(outcome)
		case store.OutcomeLocked:
			outcome = pterm.Red(outcome)
		default:
			outcome = pterm.Yellow(outcome)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", ev.ID),
			formatMillis(ev.Timestamp),
			ev.AccountID,
			outcome,
			fmt.Sprintf("%d", ev.Remaining),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d attempts\n", len(events))
	return nil
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format(constants.TimestampFormat)
}

func limitLabel(limit int) string {
	if limit <= 0 {
		return "none"
	}
	return fmt.Sprintf("%d", limit)
}
