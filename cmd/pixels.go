package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/output"
)

var (
	flagPixelsLimit int
	flagPixelsName  string
)

// pixelsCmd represents the pixels command.
var pixelsCmd = &cobra.Command{
	Use:   "pixels",
	Short: "Inspect recorded telemetry pixels",
}

// pixelsListCmd lists stored pixels.
var pixelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded pixels, newest first",
	Long: `List recorded pixels, newest first.

Examples:
  dockprompt pixels list
  dockprompt pixels list --limit 5
  dockprompt pixels list --name m_default_browser_dock_banner_impression`,
	Args: cobra.NoArgs,
	RunE: runPixelsList,
}

// pixelsClearCmd removes stored pixels.
var pixelsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove recorded pixels and frequency markers",
	Args:  cobra.NoArgs,
	RunE:  runPixelsClear,
}

func init() {
	pixelsListCmd.Flags().IntVarP(&flagPixelsLimit, "limit", "n", 20,
		"Maximum number of pixels to show (0 for all)")
	pixelsListCmd.Flags().StringVar(&flagPixelsName, "name", "",
		"Only show pixels with this name")

	pixelsCmd.AddCommand(pixelsListCmd)
	pixelsCmd.AddCommand(pixelsClearCmd)
	rootCmd.AddCommand(pixelsCmd)
}

// runPixelsList handles the pixels list command.
func runPixelsList(cmd *cobra.Command, args []string) error {
	var (
		records []*model.PixelRecord
		err     error
	)
	if flagPixelsName != "" {
		records, err = ctx.PixelRepo.ListByName(flagPixelsName)
	} else {
		records, err = ctx.PixelRepo.List(0)
	}
	if err != nil {
		return err
	}
	if flagPixelsLimit > 0 && len(records) > flagPixelsLimit {
		records = records[:flagPixelsLimit]
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewPixelsResponse(records))
	}
	ctx.CLIFormatter().PrintPixels(records)
	return nil
}

// runPixelsClear handles the pixels clear command.
func runPixelsClear(cmd *cobra.Command, args []string) error {
	n, err := ctx.PixelRepo.Clear()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "ok", "removed": n})
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Removed %d pixel records.", n))
	return nil
}
