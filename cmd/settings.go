package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/companion/cmd/config"
)

func NewSettingsCmd(app **config.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the companion folder settings",
	}

	cmd.AddCommand(newSettingsGetCmd(app))
	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func newSettingsGetCmd(app **config.App) *cobra.Command {
	var getJSON bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the base path for companion folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app

			if getJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(a.Settings.Get())
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.Settings.CompanionFolderLocation())
			return nil
		},
	}

	cmd.Flags().BoolVar(&getJSON, "json", false, "Output the whole settings object as JSON")

	return cmd
}

func newSettingsSetCmd(app **config.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path>",
		Short: "Set the base path for companion folders",
		Long: `Set the base path for companion folders.

The default is empty, which means the companion folder sits directly next to
the note file. Otherwise give a path from the vault root to the folder the
companion folders are mirrored under. Path must not start with '/' but end
with one; other spellings are normalized when a folder is resolved.

Examples:
  companion settings set Attachments/
  companion settings set ""              # back to next-to-note`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app

			if err := a.Settings.SetCompanionFolderLocation(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.Presenter.Success(fmt.Sprintf("Base path for companion folders: %q", args[0]))
			return nil
		},
	}

	return cmd
}
