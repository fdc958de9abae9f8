// Package cmd provides Cobra CLI commands for multiview.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/multiview/internal/cli"
	"github.com/bnema/multiview/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo = build.DevInfo()
	rootCmd   = &cobra.Command{
		Use:   "multiview",
		Short: "Watch many pages and videos side by side in your terminal",
		Long: `Multiview - a multi-view browser for the terminal.

One URL input drives a whole grid of views. YouTube and Vimeo links are
turned into embedded players; anything else becomes a page preview.

Features:
  - Up to 100 views at once
  - Video detection for YouTube, Vimeo, Twitch, Dailymotion and more
  - Grid and stack layouts
  - Light and dark themes, configurable palettes

Run 'multiview' to start at the welcome screen, or 'multiview browse 4'
to open four views right away.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runBrowse,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	addBrowseFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
