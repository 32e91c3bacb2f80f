package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/grovetools/companion/pkg/models"
	"github.com/grovetools/companion/pkg/resolver"
)

// Disk is a vault backed by a directory on the local filesystem.
type Disk struct {
	root string
}

// NewDisk creates a vault rooted at dir.
func NewDisk(dir string) (*Disk, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault dir: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault is not a directory: %s", abs)
	}

	return &Disk{root: abs}, nil
}

// Root returns the absolute vault directory.
func (d *Disk) Root() string {
	return d.root
}

// AbsPath returns the absolute filesystem path of a vault path.
func (d *Disk) AbsPath(p string) string {
	return filepath.Join(d.root, filepath.FromSlash(resolver.Normalize(p)))
}

// RelPath maps an absolute filesystem path back into the vault.
func (d *Disk) RelPath(abs string) (string, bool) {
	rel, err := filepath.Rel(d.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return filepath.ToSlash(rel), true
}

// GetEntryByPath returns the entry at p. Folders carry their direct children;
// nested folders are not expanded.
func (d *Disk) GetEntryByPath(ctx context.Context, p string) (*models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p = resolver.Normalize(p)
	info, err := os.Stat(d.AbsPath(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}

	entry := newEntry(p, info.Name(), info.IsDir())
	if p == "" {
		entry.Name = ""
	}
	if !entry.IsFolder() {
		return entry, nil
	}

	children, err := os.ReadDir(d.AbsPath(p))
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", p, err)
	}

	entry.Children = make([]*models.Entry, 0, len(children))
	for _, c := range children {
		if isHidden(c.Name()) {
			continue
		}
		entry.Children = append(entry.Children, newEntry(join(p, c.Name()), c.Name(), c.IsDir()))
	}

	return entry, nil
}

// CreateFolder creates the folder at p together with missing parents. It
// fails with ErrExist when p is occupied and ErrNotFolder when a parent
// segment is a file.
func (d *Disk) CreateFolder(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p = resolver.Normalize(p)
	abs := d.AbsPath(p)

	if _, err := os.Lstat(abs); err == nil {
		return fmt.Errorf("create folder %s: %w", p, ErrExist)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			return fmt.Errorf("create folder %s: %w", p, ErrNotFolder)
		}
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("create folder %s: %w", p, ErrExist)
		}
		return fmt.Errorf("create folder %s: %w", p, err)
	}

	return nil
}

func newEntry(p, name string, isDir bool) *models.Entry {
	kind := models.KindFile
	if isDir {
		kind = models.KindFolder
	}
	return &models.Entry{Kind: kind, Path: p, Name: name}
}

func join(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Dotfiles are not part of the vault.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
