// Package cmd provides the CLI commands for dockprompt.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/dockprompt/internal/config"
	"github.com/manav03panchal/dockprompt/internal/errors"
	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/output"
	"github.com/manav03panchal/dockprompt/internal/parser"
	"github.com/manav03panchal/dockprompt/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat        string
	flagColor         string
	flagDebug         bool
	flagNow           string
	flagAssumeDefault bool
	flagAssumeInDock  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dockprompt",
	Short: "Decide when to offer the default-browser and dock prompts",
	Long: `dockprompt decides whether to ask the user to make the browser the
default and keep it in the dock, and which surface to use: a one-time
popover, a repeating banner, or a welcome-back modal for returning users.

Examples:
  dockprompt check
  dockprompt check --interactive
  dockprompt confirm popover
  dockprompt dismiss banner --never-ask-again
  dockprompt status --now "in 30 days"`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}
		if err := config.LoadDotEnv(); err != nil {
			logging.Warn("failed to load .env", logging.KeyError, err)
		}

		format, ok := output.ParseFormat(flagFormat)
		if !ok {
			return errors.NewUserErrorWithField("format", flagFormat, "unknown output format", "Use one of: cli, json, plain.", nil)
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		opts.Out = cmd.OutOrStdout()

		if flagNow != "" {
			wall := time.Now()
			result := parser.ParseTimestamp(flagNow, wall)
			if pe, ok := result.Error.(*parser.ParseError); ok {
				return pe.ToUserError()
			} else if result.Error != nil {
				return result.Error
			}
			offset := result.Time.Sub(wall)
			opts.Now = func() time.Time { return time.Now().Add(offset) }
		}
		if cmd.Flags().Changed("assume-default") {
			opts.AssumeDefault = &flagAssumeDefault
		}
		if cmd.Flags().Changed("assume-in-dock") {
			opts.AssumeInDock = &flagAssumeInDock
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return errors.NewSystemErrorWithOp("open", "failed to open database", err)
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()

		cmd.SetContext(logging.NewRequestContext(cmd.Context()))
		logging.DebugContext(cmd.Context(), "command started", logging.KeyOperation, cmd.CommandPath())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current status
		return runStatus(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer closeContext()

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		printError(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), err)
	}
	return err
}

func closeContext() {
	if ctx == nil {
		return
	}
	if err := ctx.Close(); err != nil {
		logging.Warn("failed to close database", logging.KeyError, err)
	}
	ctx = nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagNow, "now", "",
		"Evaluate as if it were this time (e.g. 'in 14 days', '+3w', '2026-01-15'); the install date stays on the wall clock")
	rootCmd.PersistentFlags().BoolVar(&flagAssumeDefault, "assume-default", false,
		"Treat the browser as (not) the default instead of asking xdg-settings")
	rootCmd.PersistentFlags().BoolVar(&flagAssumeInDock, "assume-in-dock", false,
		"Treat the browser as (not) in the dock instead of the stored flag")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("dockprompt %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// printError reports err as JSON on stdout in JSON mode and as text on
// stderr otherwise.
func printError(stdout, stderr io.Writer, err error) {
	if flagFormat == string(output.FormatJSON) {
		f := output.NewFormatter()
		f.Writer = stdout
		if jerr := f.JSON(output.NewErrorResponse(err.Error(), errors.GetSuggestion(err))); jerr == nil {
			return
		}
	}
	fmt.Fprintf(stderr, "Error: %s\n", errors.FormatError(err))
}
