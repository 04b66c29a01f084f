package prompts

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"

	"github.com/smallworld/txstats/internal/ui"
)

var ErrNoClients = errors.New("no clients to choose from")

// PromptClient asks the user to pick one of the known client names.
func PromptClient(message string, clients []string) (string, error) {
	if len(clients) == 0 {
		return "", ErrNoClients
	}

	selected := clients[0]

	opts := make([]huh.Option[string], 0, len(clients))
	for _, c := range clients {
		opts = append(opts, huh.NewOption(c, c))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Height(selectHeight(len(clients))).
		Value(&selected).
		Run()

	return selected, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: defaultValue,
	}, &confirm, ui.IconOption())

	return confirm, err
}

func selectHeight(n int) int {
	const maxVisible = 10
	if n+2 > maxVisible {
		return maxVisible
	}
	return n + 2
}
