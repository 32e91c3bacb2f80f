package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/companion/cmd/config"
	"github.com/grovetools/companion/pkg/render"
)

func NewRenderCmd(app **config.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <note>",
		Short: "Render a note with its companion-folder blocks expanded",
		Long: "Print the note body with every ```" + render.Language + "``` code block\n" +
			"replaced by a listing of the note's companion folder.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			p := vaultPath(a, args[0])

			content, err := os.ReadFile(a.Vault.AbsPath(p))
			if err != nil {
				return fmt.Errorf("read note: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Note(cmd.Context(), content, p, a.Adapters.CodeBlock))
			return nil
		},
	}

	return cmd
}
