package vault

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/grovetools/companion/pkg/models"
	"github.com/grovetools/companion/pkg/resolver"
)

// Memory is an in-memory vault. Children keep insertion order.
type Memory struct {
	mu   sync.Mutex
	root *models.Entry
}

// NewMemory returns an empty in-memory vault.
func NewMemory() *Memory {
	return &Memory{root: &models.Entry{Kind: models.KindFolder}}
}

// AbsPath returns the path unchanged with a leading separator.
func (m *Memory) AbsPath(p string) string {
	return "/" + resolver.Normalize(p)
}

// GetEntryByPath returns a copy of the entry at p, or nil.
func (m *Memory) GetEntryByPath(ctx context.Context, p string) (*models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.lookup(resolver.Normalize(p))
	if e == nil {
		return nil, nil
	}

	out := &models.Entry{Kind: e.Kind, Path: e.Path, Name: e.Name}
	if e.IsFolder() {
		out.Children = make([]*models.Entry, 0, len(e.Children))
		for _, c := range e.Children {
			out.Children = append(out.Children, &models.Entry{Kind: c.Kind, Path: c.Path, Name: c.Name})
		}
	}
	return out, nil
}

// CreateFolder creates the folder at p and any missing parents.
func (m *Memory) CreateFolder(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p = resolver.Normalize(p)
	if m.lookup(p) != nil {
		return fmt.Errorf("create folder %s: %w", p, ErrExist)
	}
	if _, err := m.add(p, models.KindFolder); err != nil {
		return fmt.Errorf("create folder %s: %w", p, err)
	}
	return nil
}

// AddFile adds a file, creating parent folders as needed.
func (m *Memory) AddFile(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = resolver.Normalize(p)
	if m.lookup(p) != nil {
		return fmt.Errorf("add file %s: %w", p, ErrExist)
	}
	_, err := m.add(p, models.KindFile)
	return err
}

func (m *Memory) lookup(p string) *models.Entry {
	if p == "" {
		return m.root
	}

	cur := m.root
	for _, seg := range strings.Split(p, "/") {
		if !cur.IsFolder() {
			return nil
		}
		var next *models.Entry
		for _, c := range cur.Children {
			if c.Name == seg {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

func (m *Memory) add(p string, kind models.EntryKind) (*models.Entry, error) {
	parentPath, name := path.Split(p)
	parentPath = strings.TrimSuffix(parentPath, "/")

	parent := m.lookup(parentPath)
	if parent == nil {
		var err error
		if parent, err = m.add(parentPath, models.KindFolder); err != nil {
			return nil, err
		}
	}
	if !parent.IsFolder() {
		return nil, ErrNotFolder
	}

	e := &models.Entry{Kind: kind, Path: p, Name: name}
	parent.Children = append(parent.Children, e)
	return e, nil
}
