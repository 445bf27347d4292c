package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/dockprompt/internal/daemon"
	"github.com/manav03panchal/dockprompt/internal/errors"
	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/notify"
	"github.com/manav03panchal/dockprompt/internal/output"
	"github.com/manav03panchal/dockprompt/internal/scheduler"
)

var (
	flagWatchSchedule string
	flagWatchOnce     bool
	flagWatchPIDFile  string
	flagWatchPrint    bool
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Check for due prompts on a schedule",
	Long: `Run in the foreground and check for due prompts on a cron schedule.
Every check records activity; due prompts are sent to the console and the
configured notification webhook. The first check after the machine wakes
only records activity.

Examples:
  dockprompt watch
  dockprompt watch --schedule "0 */15 * * * *"
  dockprompt watch --once
  dockprompt watch install`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchSchedule, "schedule", "",
		"Cron schedule with a seconds field (default from DOCKPROMPT_WATCH_SCHEDULE)")
	watchCmd.Flags().BoolVar(&flagWatchOnce, "once", false,
		"Run a single check and exit")
	watchCmd.Flags().StringVar(&flagWatchPIDFile, "pid-file", "",
		"PID file that keeps watch to one instance (default under XDG_STATE_HOME)")
	watchInstallCmd.Flags().BoolVar(&flagWatchPrint, "print", false,
		"Print the unit file instead of installing it")

	watchCmd.AddCommand(watchInstallCmd)
	watchCmd.AddCommand(watchUninstallCmd)
	rootCmd.AddCommand(watchCmd)
}

var watchInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Run watch as a systemd user service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := daemon.NewServiceManager("", nil)
		if err != nil {
			return errors.NewSystemErrorWithOp("watch install", "cannot locate executable", err)
		}
		if flagWatchPrint {
			return m.Render(cmd.OutOrStdout())
		}
		if err := m.Install(); err != nil {
			return errors.NewSystemErrorWithOp("watch install", "failed to install service", err)
		}
		return reportService("installed", m.UnitPath())
	},
}

var watchUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the systemd user service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := daemon.NewServiceManager("", nil)
		if err != nil {
			return errors.NewSystemErrorWithOp("watch uninstall", "cannot locate executable", err)
		}
		if err := m.Uninstall(); err != nil {
			return errors.NewSystemErrorWithOp("watch uninstall", "failed to remove service", err)
		}
		return reportService("uninstalled", m.UnitPath())
	},
}

func reportService(action, path string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "ok",
			"action": action,
			"unit":   path,
		})
	}
	ctx.CLIFormatter().Success("Service " + action + ": " + path)
	return nil
}

// runWatch handles the watch command.
func runWatch(cmd *cobra.Command, args []string) error {
	schedule := ctx.Config.Watch.Schedule
	if flagWatchSchedule != "" {
		schedule = flagWatchSchedule
	}

	sched := scheduler.NewScheduler(scheduler.Config{
		Schedule:       schedule,
		SleepThreshold: ctx.Config.Watch.SleepThreshold,
		Activity:       ctx.Activity,
		Prompts:        ctx.Coordinator,
		OnDue:          presentDue,
		Now:            ctx.Now,
	})

	if flagWatchOnce {
		sched.Tick()
		return nil
	}

	if err := scheduler.ValidateSchedule(schedule); err != nil {
		return errors.NewUserErrorWithField("schedule", schedule, "invalid watch schedule",
			"Use a cron spec with a seconds field, e.g. '0 0 * * * *'.", err)
	}

	pid := daemon.NewPIDFile(flagWatchPIDFile)
	if err := pid.Acquire(); err != nil {
		if errors.Is(err, daemon.ErrAlreadyRunning) {
			return errors.NewUserError(err.Error(), "Stop the other watch process first")
		}
		return errors.NewSystemErrorWithOp("watch", "failed to write PID file", err)
	}
	defer func() {
		if err := pid.Release(); err != nil {
			logging.Warn("failed to remove PID file", logging.KeyError, err)
		}
	}()

	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	if !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Title("Watching for due prompts")
		cli.Field("Schedule", schedule)
		cli.Field("Next check", output.FormatTime(sched.NextRun()))
		cli.Muted("Press Ctrl+C to stop.")
	}

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logging.DebugContext(cmd.Context(), "watch stopped", "checks", sched.Ticks())
	return nil
}

// presentDue reports a prompt found by a scheduled check.
func presentDue(p model.PromptType, e model.PromptEligibility) {
	if ctx.IsJSON() {
		if err := ctx.Formatter.JSON(output.NewCheckResponse(p, e)); err != nil {
			logging.Warn("failed to write check result", logging.KeyError, err)
		}
	}
	ctx.Presenter.Present(notify.PromptDueNotification(p, e, ctx.Now()))
}
