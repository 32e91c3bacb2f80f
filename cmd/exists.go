package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/companion/cmd/config"
)

func NewExistsCmd(app **config.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <note>",
		Short: "Report whether a note has a companion folder",
		Long: `Print true when anything occupies the note's companion folder path,
false otherwise. Non-note files never have one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			fmt.Fprintln(cmd.OutOrStdout(), a.Service.Exists(cmd.Context(), noteArg(a, args[0])))
			return nil
		},
	}

	return cmd
}
