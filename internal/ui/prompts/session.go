package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/validation"
)

func PromptAccountNumber() (string, error) {
	return PromptInput("Account Number:", validation.ValidateAccountNumberInput)
}

// PromptPIN reads the PIN without echoing it.
func PromptPIN() (string, error) {
	var pin string

	prompt := &survey.Password{
		Message: "PIN:",
	}

	err := survey.AskOne(prompt, &pin,
		survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validation.ValidatePINInput(s)
		}),
		ui.IconOption(),
	)
	return pin, err
}

// PromptMenuChoice reads the raw menu choice. Parsing is left to the
// caller so bad input is reported the same way as everywhere else.
func PromptMenuChoice() (string, error) {
	title := fmt.Sprintf("Choose option (%d-%d):", constants.MenuMin, constants.MenuMax)
	return PromptInput(title, nil)
}

func PromptTransactionAmount(operation string) (string, error) {
	return PromptAmount(
		fmt.Sprintf("Amount to %s:", operation),
		"Positive amount, e.g. 150.50",
	)
}
