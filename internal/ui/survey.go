package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption swaps survey's "?" for "-" so detail prompts line up under
// the menu.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
		icons.Help.Text = "hint"
	})
}
