package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget which prompts were shown",
	Long: `Remove the stored prompt history: shown dates, banner occurrences and
the permanent banner dismissal. Activity, settings, onboarding and pixels
are kept.

Examples:
  dockprompt reset`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

// runReset handles the reset command.
func runReset(cmd *cobra.Command, args []string) error {
	n, err := ctx.PromptRepo.Reset()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "ok", "removed": n})
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Prompt history cleared (%d keys removed).", n))
	return nil
}
