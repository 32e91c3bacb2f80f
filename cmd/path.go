package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/companion/cmd/config"
	"github.com/grovetools/companion/pkg/service"
)

func NewPathCmd(app **config.App) *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   "path <note>",
		Short: "Print the companion folder path of a note",
		Long: `Print the companion folder path of a note without touching the vault.

Examples:
  companion path Projects/todo.md          # Projects/todo
  companion path --abs Projects/todo.md    # /home/me/vault/Projects/todo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app

			p, err := a.Service.Resolve(noteArg(a, args[0]))
			if errors.Is(err, service.ErrNotANote) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if absolute {
				p = a.Vault.AbsPath(p)
			}

			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().BoolVar(&absolute, "abs", false, "Print the absolute filesystem path")

	return cmd
}
