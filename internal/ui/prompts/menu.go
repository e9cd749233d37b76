package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/accrue/internal/ui"
)

// Menu choices, keyed by the letter the user would type.
const (
	ActionInput  = "I"
	ActionDefine = "D"
	ActionPrint  = "P"
	ActionQuit   = "Q"
)

// PromptMenu shows the main menu. The greeting changes after the first
// action, the way a teller asks "anything else?".
func PromptMenu(first bool) (string, error) {
	title := "Welcome to AwesomeGIC Bank! What would you like to do?"
	if !first {
		title = "Is there anything else you'd like to do?"
	}

	selection := ActionInput
	err := huh.NewSelect[string]().
		Title(title).
		Options(
			huh.NewOption("[I]nput transactions", ActionInput),
			huh.NewOption("[D]efine interest rules", ActionDefine),
			huh.NewOption("[P]rint statement", ActionPrint),
			huh.NewOption("[Q]uit", ActionQuit),
		).
		Value(&selection).
		Run()

	return selection, err
}

// PromptLine reads one detail line. An empty answer means "back to menu".
func PromptLine(message string, help string) (string, error) {
	var line string
	prompt := &survey.Input{
		Message: message,
		Help:    help,
	}
	if err := survey.AskOne(prompt, &line, ui.IconOption()); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func PromptTransactionLine() (string, error) {
	return PromptLine(
		"Please enter transaction details in <Date>|<Account>|<Type>|<Amount> format (or enter blank to go back to main menu):",
		"e.g. 20230626|AC001|W|20.00  Type is D for deposit, W for withdrawal",
	)
}

func PromptRuleLine() (string, error) {
	return PromptLine(
		"Please enter interest rules details in <Date>|<RuleId>|<Rate in %> format (or enter blank to go back to main menu):",
		"e.g. 20230615|RULE03|2.20  Rate must be greater than 0 and less than 100",
	)
}

func PromptStatementLine() (string, error) {
	return PromptLine(
		"Please enter account and month to generate the statement <Account>|<Year><Month> (or enter blank to go back to main menu):",
		"e.g. AC001|202306  A bare month such as AC001|06 means this year",
	)
}
