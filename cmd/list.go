package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/companion/cmd/config"
	"github.com/grovetools/companion/pkg/service"
)

// Listing states
const (
	stateOK       = "ok"
	stateEmpty    = "empty"
	stateMissing  = "missing"
	stateNotANote = "not_a_note"
)

type listing struct {
	Note     string   `json:"note" yaml:"note"`
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	State    string   `json:"state" yaml:"state"`
	Children []string `json:"children" yaml:"children"`
}

func NewListCmd(app **config.App) *cobra.Command {
	var (
		listJSON bool
		listYAML bool
	)

	cmd := &cobra.Command{
		Use:     "list <note>",
		Short:   "List the contents of a note's companion folder",
		Aliases: []string{"ls"},
		Long: `List the direct children of a note's companion folder in vault order.
With --json or --yaml the note's frontmatter title and tags are included.

Examples:
  companion list Projects/todo.md
  companion list --json Projects/todo.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()
			note := noteArg(a, args[0])

			if !listJSON && !listYAML {
				a.Presenter.Block(a.Adapters.CodeBlock(ctx, note.Path))
				return nil
			}

			l := listing{Note: note.Path, State: stateOK, Children: []string{}}
			l.Path, _ = a.Service.Resolve(note)
			if note.IsNote() {
				props := noteProperties(a, note.Path)
				l.Title, l.Tags = props.Title, props.Tags
			}

			names, err := a.Service.ListChildren(ctx, note)
			switch {
			case errors.Is(err, service.ErrNotANote):
				l.State = stateNotANote
			case errors.Is(err, service.ErrNoCompanionFolder):
				l.State = stateMissing
			case errors.Is(err, service.ErrEmptyFolder):
				l.State = stateEmpty
			case err != nil:
				return err
			default:
				l.Children = names
			}

			if listYAML {
				data, err := yaml.Marshal(l)
				if err != nil {
					return fmt.Errorf("failed to marshal listing to YAML: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(l)
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&listYAML, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}
