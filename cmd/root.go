package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/companion/cmd/config"
)

// NewRootCmd builds the companion command tree.
func NewRootCmd() *cobra.Command {
	var app *config.App

	rootCmd := &cobra.Command{
		Use:   "companion",
		Short: "Per-note companion folders for a markdown vault",
		Long: `companion derives, creates and reveals the companion folder of a note: a
per-note attachment folder named like the note without its extension, placed
next to the note or mirrored under a configured base path.`,
		SilenceUsage: true,
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		config.InitConfig()
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		app, err = config.InitApp(cmd.OutOrStdout(), cmd.ErrOrStderr())
		return err
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		return app.Close()
	}

	// Add subcommands
	rootCmd.AddCommand(NewPathCmd(&app))
	rootCmd.AddCommand(NewExistsCmd(&app))
	rootCmd.AddCommand(NewRevealCmd(&app))
	rootCmd.AddCommand(NewListCmd(&app))
	rootCmd.AddCommand(NewRenderCmd(&app))
	rootCmd.AddCommand(NewSettingsCmd(&app))
	rootCmd.AddCommand(NewWatchCmd(&app))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
