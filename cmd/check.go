package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/dockprompt/internal/errors"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/output"
	"github.com/manav03panchal/dockprompt/internal/tui"
)

var (
	flagCheckInteractive bool
	flagCheckNoActivity  bool
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a prompt is due",
	Long: `Record today's activity, then decide which prompt to show.

A due prompt counts as shown: its date is stored and the impression pixel
fires. Use --interactive to answer it straight away.

Examples:
  dockprompt check
  dockprompt check --interactive
  dockprompt check --now "in 14 days" --format json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&flagCheckInteractive, "interactive", "i", false,
		"Show the prompt in the terminal and apply the answer")
	checkCmd.Flags().BoolVar(&flagCheckNoActivity, "no-activity", false,
		"Do not record today as an active day")
	rootCmd.AddCommand(checkCmd)
}

// runCheck handles the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	// Deciding records the prompt as shown, so refuse before any state changes.
	if flagCheckInteractive && (ctx.IsJSON() || !tui.IsTerminal(os.Stdin)) {
		return errors.NewUserError("interactive mode needs a terminal",
			"Run 'dockprompt check' and answer with 'dockprompt confirm' or 'dockprompt dismiss'.")
	}

	if !flagCheckNoActivity {
		ctx.Activity.RecordActivity()
	}

	p := ctx.Coordinator.GetPromptType()
	e := ctx.Coordinator.EvaluatePromptEligibility()

	if flagCheckInteractive && p != model.PromptNone {
		choice, err := tui.Run(p, e, nil, nil)
		if err != nil {
			return errors.NewSystemError("failed to show prompt", err)
		}
		return applyChoice(p, choice)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewCheckResponse(p, e))
	}
	ctx.CLIFormatter().PrintCheck(p, e)
	return nil
}

// applyChoice routes an interactive answer to the coordinator.
func applyChoice(p model.PromptType, choice tui.Choice) error {
	cli := ctx.CLIFormatter()
	switch choice {
	case tui.ChoiceConfirm:
		ctx.Coordinator.ConfirmAction(p)
		cli.Success(p.Label() + " confirmed.")
	case tui.ChoiceDismiss:
		ctx.Coordinator.DismissAction(model.UserInput(p, false))
		cli.Muted(p.Label() + " dismissed.")
	case tui.ChoiceNeverAskAgain:
		ctx.Coordinator.DismissAction(model.UserInput(p, true))
		cli.Muted("The banner will not be shown again.")
	default:
		cli.Muted("Closed without an answer.")
	}
	return nil
}
