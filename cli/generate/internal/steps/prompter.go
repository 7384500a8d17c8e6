package steps

import (
	"errors"

	"github.com/foldertemplate/ftg/cli/util"
	"github.com/manifoldco/promptui"
)

// Prompter interface is used for menus and yes/no questions.
type Prompter interface {
	// Select shows a menu and returns the chosen item.
	Select(label string, items []string) (string, error)
	// Confirm asks a yes/no question. defaultYes is used on empty answer.
	Confirm(label string, defaultYes bool) (bool, error)
}

// consolePrompter implements prompts in terminal.
type consolePrompter struct{}

// NewConsolePrompter creates new terminal prompter.
func NewConsolePrompter() Prompter {
	return consolePrompter{}
}

// promptError converts promptui errors. Interrupt and end of input abort the run.
func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return util.ErrCmdAbort
	}
	return err
}

// Select shows a menu in terminal.
func (consolePrompter) Select(label string, items []string) (string, error) {
	selectPrompt := promptui.Select{
		Label:        label,
		Items:        items,
		HideSelected: true,
	}
	_, item, err := selectPrompt.Run()
	if err != nil {
		return "", promptError(err)
	}
	return item, nil
}

// Confirm asks a yes/no question in terminal.
func (consolePrompter) Confirm(label string, defaultYes bool) (bool, error) {
	confirmPrompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultYes {
		confirmPrompt.Default = "y"
	}
	if _, err := confirmPrompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, promptError(err)
	}
	return true, nil
}
