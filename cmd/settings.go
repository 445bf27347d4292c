package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/dockprompt/internal/config"
	"github.com/manav03panchal/dockprompt/internal/errors"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/parser"
)

var (
	flagSettingsStored bool
	flagExportOutput   string
)

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config", "cfg"},
	Short:   "View and change prompt settings",
	Long: `View and change the feature flags and day thresholds that decide when
prompts are shown. Values in the flags file override stored settings.

Examples:
  dockprompt settings show
  dockprompt settings set first-popover-delay-days 7
  dockprompt settings set active-user-prompt-enabled false
  dockprompt settings export -o ~/.config/dockprompt/flags.yaml`,
}

// settingsExportCmd writes settings in the flags file format.
var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write effective settings as a flags file",
	Args:  cobra.NoArgs,
	RunE:  runSettingsExport,
}

// settingsShowCmd shows settings.
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

// settingsSetCmd sets a stored setting.
var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a stored setting",
	Long: `Change a stored setting.

Keys:
  active_user_prompt_enabled               true|false
  inactive_user_prompt_enabled             true|false
  first_popover_delay_days                 DAYS
  banner_after_popover_delay_days          DAYS
  banner_repeat_interval_days              DAYS
  inactive_modal_days_since_install        DAYS
  inactive_modal_number_of_inactive_days   DAYS

Dashes and underscores are interchangeable in keys.`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return parser.SettingKeys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runSettingsSet,
}

func init() {
	settingsShowCmd.Flags().BoolVar(&flagSettingsStored, "stored", false,
		"Show stored settings without the flags file")

	settingsExportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "",
		"Write to FILE instead of standard output")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsExportCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// runSettingsShow handles the settings show command.
func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings := ctx.Flags.PromptSettings()
	if flagSettingsStored {
		stored, err := ctx.Flags.Stored()
		if err != nil {
			return err
		}
		settings = stored
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}
	ctx.CLIFormatter().PrintSettings(settings)
	return nil
}

// runSettingsSet handles the settings set command.
func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := ctx.Flags.Stored()
	if err != nil {
		return err
	}
	if err := parser.ApplySetting(settings, key, value); err != nil {
		return err
	}
	if err := ctx.SettingsRepo.Set(settings); err != nil {
		if ve, ok := err.(*model.ValidationError); ok {
			return errors.NewUserErrorWithField(ve.Field, value, ve.Message,
				errors.Suggestions[errors.ErrInvalidSetting], errors.ErrInvalidSetting)
		}
		return err
	}

	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status":   "ok",
			"key":      normalized,
			"value":    value,
			"settings": settings,
		})
	}
	ctx.CLIFormatter().Success("Set " + normalized + " = " + value)
	return nil
}

// runSettingsExport handles the settings export command.
func runSettingsExport(cmd *cobra.Command, args []string) error {
	data, err := config.Marshal(ctx.Flags.PromptSettings())
	if err != nil {
		return errors.NewSystemErrorWithOp("settings export", "failed to encode settings", err)
	}
	if flagExportOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flagExportOutput, data, 0o644); err != nil {
		return errors.NewSystemErrorWithOp("settings export", "failed to write flags file", err)
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "ok", "path": flagExportOutput})
	}
	ctx.CLIFormatter().Success("Wrote " + flagExportOutput)
	return nil
}
