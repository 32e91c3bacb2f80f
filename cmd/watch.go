package cmd

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grovetools/companion/cmd/config"
	"github.com/grovetools/companion/pkg/watch"
)

func NewWatchCmd(app **config.App) *cobra.Command {
	var watchJSON bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report new notes and their companion folders",
		Long: `Watch the vault and print every newly created note together with its
companion folder path and whether that folder already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(a.Vault, a.Service, a.Logger.WithField("component", "watch"))
			if err != nil {
				return err
			}

			events := make(chan watch.Event)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				defer close(events)
				return w.Run(gctx, events)
			})
			g.Go(func() error {
				return printEvents(cmd, events, watchJSON)
			})

			return g.Wait()
		},
	}

	cmd.Flags().BoolVar(&watchJSON, "json", false, "Output events as JSON lines")

	return cmd
}

func printEvents(cmd *cobra.Command, events <-chan watch.Event, asJSON bool) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	for ev := range events {
		if asJSON {
			if err := encoder.Encode(ev); err != nil {
				return err
			}
			continue
		}

		state := "missing"
		if ev.Exists {
			state = "exists"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", ev.Note, ev.CompanionPath, state)
	}
	return nil
}
