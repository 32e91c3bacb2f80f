// Package vault provides the file-tree abstraction companion folders live in.
package vault

import (
	"context"
	"errors"

	"github.com/grovetools/companion/pkg/models"
)

var (
	// ErrExist is returned by CreateFolder when an entry already occupies the path.
	ErrExist = errors.New("entry already exists")
	// ErrNotFolder is returned when an ancestor segment of a path is a file.
	ErrNotFolder = errors.New("ancestor is not a folder")
)

// Vault looks up and creates entries by vault-relative path.
type Vault interface {
	// GetEntryByPath returns the entry at path, or nil when nothing is there.
	GetEntryByPath(ctx context.Context, path string) (*models.Entry, error)
	// CreateFolder creates a folder and any missing parents.
	CreateFolder(ctx context.Context, path string) error
	// AbsPath maps a vault path to the location the host's file browser understands.
	AbsPath(path string) string
}
