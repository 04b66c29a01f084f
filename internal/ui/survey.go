package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption gives survey prompts the same "-" marker used by the rest of the CLI.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
		icons.Question.Format = "cyan+b"
	})
}
