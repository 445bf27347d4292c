package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/dockprompt/internal/output"
	"github.com/manav03panchal/dockprompt/internal/prompt"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show prompt history, activity and settings",
	Long: `Show the stored prompt history, recent activity, current eligibility and
the effective settings. Nothing is recorded.

Examples:
  dockprompt status
  dockprompt status --format json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

// activityCmd groups activity subcommands.
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage user activity",
}

// activityRecordCmd records a day of activity.
var activityRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record today as an active day",
	Long: `Record today as an active day. Repeated calls on the same day are no-ops.

Examples:
  dockprompt activity record
  dockprompt activity record --now "+10d"`,
	Args: cobra.NoArgs,
	RunE: runActivityRecord,
}

// onboardingCmd groups onboarding subcommands.
var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Manage onboarding status",
	Long: `No prompt is offered until onboarding is complete.

Examples:
  dockprompt onboarding complete
  dockprompt onboarding reset`,
}

var onboardingCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark onboarding as completed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setOnboarding(true)
	},
}

var onboardingResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Mark onboarding as not completed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setOnboarding(false)
	},
}

func init() {
	activityCmd.AddCommand(activityRecordCmd)
	onboardingCmd.AddCommand(onboardingCompleteCmd)
	onboardingCmd.AddCommand(onboardingResetCmd)

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(onboardingCmd)
}

// runStatus shows the current prompt status.
func runStatus(cmd *cobra.Command, args []string) error {
	view, err := ctx.StatusView()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewStatusResponse(view))
	}
	ctx.CLIFormatter().PrintStatus(view)
	return nil
}

// runActivityRecord handles the activity record command.
func runActivityRecord(cmd *cobra.Command, args []string) error {
	ctx.Activity.RecordActivity()

	activity, err := ctx.Activity.Activity()
	if err != nil {
		return err
	}
	inactive := prompt.InactiveDays(activity, ctx.Calendar)

	if ctx.IsJSON() {
		resp := map[string]any{
			"status":        "ok",
			"inactive_days": inactive,
		}
		if activity.LastActiveDate != nil {
			resp["last_active_date"] = output.FormatDate(*activity.LastActiveDate)
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Activity recorded for " + output.FormatDate(ctx.Now()) + ".")
	if inactive > 0 {
		cli.Muted(fmt.Sprintf("Away for %s before this.", output.FormatDays(inactive)))
	}
	return nil
}

// setOnboarding stores the onboarding flag.
func setOnboarding(completed bool) error {
	var err error
	if completed {
		err = ctx.Onboarding.Complete()
	} else {
		err = ctx.Onboarding.Reset()
	}
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":               "ok",
			"onboarding_completed": completed,
		})
	}
	if completed {
		ctx.CLIFormatter().Success("Onboarding completed.")
	} else {
		ctx.CLIFormatter().Muted("Onboarding reset; prompts are paused until it completes.")
	}
	return nil
}
