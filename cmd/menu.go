package cmd

import (
	"github.com/hance08/accrue/internal/errhandler"
	"github.com/hance08/accrue/internal/service"
	"github.com/hance08/accrue/internal/ui"
	"github.com/hance08/accrue/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type menuRunner struct {
	actions *actions
}

func newMenuRunner(svc *service.Service) *menuRunner {
	return &menuRunner{actions: newActions(svc)}
}

func NewMenuCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive banking menu",
		Long: `Open the interactive menu to input transactions, define interest rules
and print monthly statements. This is also what accrue does without a subcommand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newMenuRunner(d.app.Service).Run()
		},
	}
}

func (r *menuRunner) Run() error {
	ui.PrintBanner("AwesomeGIC Bank")

	first := true
	for {
		choice, err := prompts.PromptMenu(first)
		if err != nil {
			return err
		}
		first = false

		if choice == prompts.ActionQuit {
			pterm.Println("Thank you for banking with AwesomeGIC Bank.")
			pterm.Println("Have a nice day!")
			return nil
		}

		if err := r.handle(choice); err != nil {
			if errhandler.IsInterrupt(err) {
				return err
			}
			pterm.Error.Println(errhandler.Capitalize(err.Error()))
		}
	}
}

// handle reads one detail line for the chosen action. A blank line goes
// back to the menu.
func (r *menuRunner) handle(choice string) error {
	var ask func() (string, error)
	var run func(string) error

	switch choice {
	case prompts.ActionInput:
		ask, run = prompts.PromptTransactionLine, r.actions.inputTransaction
	case prompts.ActionDefine:
		ask, run = prompts.PromptRuleLine, r.actions.defineRule
	case prompts.ActionPrint:
		ask, run = prompts.PromptStatementLine, r.actions.printStatement
	default:
		return nil
	}

	line, err := ask()
	if err != nil || line == "" {
		return err
	}
	return run(line)
}
