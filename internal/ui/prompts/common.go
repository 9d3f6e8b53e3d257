package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/validation"
)

// PromptAmount reads an amount as typed. The prompt only bounds its length;
// whether it is a number is decided when it is parsed.
func PromptAmount(message string, helpText string) (string, error) {
	var amount string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		CharLimit(validation.MaxAmountInputLen).
		Validate(validation.ValidateAmountInput).
		Value(&amount).
		Run()

	return amount, err
}

// PromptInput prompts for a single line with an optional validator
func PromptInput(message string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	return inputVal, nil
}
