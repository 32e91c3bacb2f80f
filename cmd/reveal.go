package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/companion/cmd/config"
	"github.com/grovetools/companion/pkg/adapters"
)

func NewRevealCmd(app **config.App) *cobra.Command {
	var (
		active  string
		trigger string
	)

	cmd := &cobra.Command{
		Use:     "reveal [note]",
		Short:   adapters.Label,
		Aliases: []string{"open", adapters.CommandID},
		Long: `Create the companion folder of a note if it is missing and reveal it in
the system file browser.

Without an argument the active note is used (--active, or active_note in the
config / COMPANION_ACTIVE_NOTE).

Examples:
  companion reveal Projects/todo.md
  companion reveal --active Projects/todo.md --trigger ribbon`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()

			if len(args) == 1 {
				p, shown, err := a.Adapters.FileMenu(ctx, vaultPath(a, args[0]))
				if err != nil {
					return err
				}
				if !shown {
					a.Presenter.Notice(fmt.Sprintf("%s is only available for notes", adapters.Label))
					return nil
				}
				a.Presenter.Success(p)
				return nil
			}

			if active == "" {
				active = a.ActiveNote
			}
			if active != "" {
				active = vaultPath(a, active)
			}

			var (
				p   string
				err error
			)
			switch trigger {
			case "command":
				p, err = a.Adapters.Command(ctx, active)
			case "ribbon":
				p, err = a.Adapters.Ribbon(ctx, active)
			case "editor":
				p, err = a.Adapters.EditorMenu(ctx, active)
			default:
				return fmt.Errorf("unknown trigger: %s", trigger)
			}
			if err != nil {
				return err
			}
			if p != "" {
				a.Presenter.Success(p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&active, "active", "", "Active note (overrides active_note)")
	cmd.Flags().StringVar(&trigger, "trigger", "command", "Trigger to emulate: command, ribbon or editor")

	return cmd
}
