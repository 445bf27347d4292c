package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/dockprompt/internal/errors"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/output"
)

var (
	flagDismissNeverAskAgain bool
	flagDismissStatusUpdate  bool
)

var promptArgs = []string{"popover", "banner", "inactive"}

// confirmCmd represents the confirm command.
var confirmCmd = &cobra.Command{
	Use:   "confirm PROMPT",
	Short: "Accept a prompt",
	Long: `Accept a prompt: add the browser to the dock and request default-browser
status, whichever is still needed.

PROMPT is one of: popover, banner, inactive.

Examples:
  dockprompt confirm popover
  dockprompt confirm banner`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: promptArgs,
	RunE:      runConfirm,
}

// dismissCmd represents the dismiss command.
var dismissCmd = &cobra.Command{
	Use:   "dismiss PROMPT",
	Short: "Dismiss a prompt",
	Long: `Dismiss a prompt.

--never-ask-again hides the banner permanently. --status-update records
that the prompt went away because the user made the browser default or
added it to the dock elsewhere; no notification or pixel is sent.

Examples:
  dockprompt dismiss popover
  dockprompt dismiss banner --never-ask-again
  dockprompt dismiss banner --status-update`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: promptArgs,
	RunE:      runDismiss,
}

func init() {
	dismissCmd.Flags().BoolVar(&flagDismissNeverAskAgain, "never-ask-again", false,
		"Never show the banner again")
	dismissCmd.Flags().BoolVar(&flagDismissStatusUpdate, "status-update", false,
		"Record a passive dismissal instead of a user click")
	dismissCmd.MarkFlagsMutuallyExclusive("never-ask-again", "status-update")

	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(dismissCmd)
}

// parsePromptArg parses a PROMPT argument.
func parsePromptArg(s string) (model.PromptType, error) {
	p, err := model.ParsePromptType(s)
	if err != nil {
		return model.PromptNone, errors.NewUserErrorWithField("prompt", s, "unknown prompt type",
			errors.Suggestions[errors.ErrUnknownPrompt], errors.ErrUnknownPrompt)
	}
	return p, nil
}

// runConfirm handles the confirm command.
func runConfirm(cmd *cobra.Command, args []string) error {
	p, err := parsePromptArg(args[0])
	if err != nil {
		return err
	}

	e := ctx.Coordinator.EvaluatePromptEligibility()
	ctx.Coordinator.ConfirmAction(p)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.ActionResponse{
			Status: "ok",
			Action: "confirm",
			Prompt: string(p),
		})
	}

	cli := ctx.CLIFormatter()
	if e == model.EligibilityNone {
		cli.Muted("Already the default browser and in the dock.")
		return nil
	}
	cli.Success(p.Label() + " confirmed: " + e.Label() + ".")
	return nil
}

// runDismiss handles the dismiss command.
func runDismiss(cmd *cobra.Command, args []string) error {
	p, err := parsePromptArg(args[0])
	if err != nil {
		return err
	}
	if flagDismissNeverAskAgain && p != model.PromptBanner {
		return errors.NewUserErrorWithField("prompt", string(p), "--never-ask-again applies to the banner only",
			"Use 'dockprompt dismiss banner --never-ask-again'.", nil)
	}

	action := model.UserInput(p, flagDismissNeverAskAgain)
	if flagDismissStatusUpdate {
		action = model.StatusUpdate(p)
	}
	ctx.Coordinator.DismissAction(action)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.ActionResponse{
			Status:          "ok",
			Action:          "dismiss",
			Prompt:          string(p),
			HidePermanently: action.ShouldHidePermanently,
			StatusUpdate:    flagDismissStatusUpdate,
		})
	}

	cli := ctx.CLIFormatter()
	switch {
	case action.ShouldHidePermanently:
		cli.Muted("The banner will not be shown again.")
	case flagDismissStatusUpdate:
		cli.Muted(p.Label() + " closed.")
	default:
		cli.Muted(p.Label() + " dismissed.")
	}
	return nil
}
