package cmd

import (
	"os"
	"path/filepath"

	"github.com/grovetools/companion/cmd/config"
	"github.com/grovetools/companion/pkg/frontmatter"
	"github.com/grovetools/companion/pkg/models"
	"github.com/grovetools/companion/pkg/resolver"
)

// vaultPath maps a command-line argument to a vault-relative note path. An
// existing file inside the vault, given relative to the working directory or
// absolute, wins; anything else is taken as vault-relative.
func vaultPath(app *config.App, arg string) string {
	if abs, err := filepath.Abs(arg); err == nil {
		if _, err := os.Stat(abs); err == nil {
			if rel, ok := app.Vault.RelPath(abs); ok {
				return rel
			}
		}
	}
	return resolver.Normalize(arg)
}

func noteArg(app *config.App, arg string) *models.Note {
	return models.NoteFromPath(vaultPath(app, arg))
}

// noteProperties reads the frontmatter of the note at a vault path. A missing
// note or unreadable frontmatter yields no properties.
func noteProperties(app *config.App, p string) frontmatter.Properties {
	content, err := os.ReadFile(app.Vault.AbsPath(p))
	if err != nil {
		return frontmatter.Properties{}
	}

	props, _, err := frontmatter.Parse(string(content))
	if err != nil {
		app.Logger.WithError(err).WithField("note", p).Warn("ignoring frontmatter")
	}
	return props
}
