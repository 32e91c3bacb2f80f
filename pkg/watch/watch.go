// Package watch reports notes created in a vault together with their
// companion folder path.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/companion/pkg/models"
	"github.com/grovetools/companion/pkg/service"
	"github.com/grovetools/companion/pkg/vault"
)

// Event describes a newly created note.
type Event struct {
	Note          string `json:"note"`
	CompanionPath string `json:"companion_path"`
	Exists        bool   `json:"exists"`
}

// Watcher follows file creation across a disk vault.
type Watcher struct {
	vault  *vault.Disk
	svc    *service.Service
	logger logrus.FieldLogger
	fsw    *fsnotify.Watcher
}

// New creates a watcher for every visible folder of v.
func New(v *vault.Disk, svc *service.Service, logger logrus.FieldLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{vault: v, svc: svc, logger: logger, fsw: fsw}
	if err := w.addTree(v.Root()); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run delivers events until ctx is canceled. It closes the underlying
// watcher before returning.
func (w *Watcher) Run(ctx context.Context, events chan<- Event) error {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) {
				continue
			}
			out, ok := w.handleCreate(ctx, ev.Name)
			if !ok {
				continue
			}
			select {
			case events <- out:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Warn("watch error")
		}
	}
}

func (w *Watcher) handleCreate(ctx context.Context, name string) (Event, bool) {
	rel, ok := w.vault.RelPath(name)
	if !ok || hidden(rel) {
		return Event{}, false
	}

	info, err := os.Stat(name)
	if err != nil {
		return Event{}, false
	}
	if info.IsDir() {
		if err := w.addTree(name); err != nil {
			w.logger.WithError(err).WithField("path", rel).Warn("cannot watch folder")
		}
		return Event{}, false
	}
	if !models.IsNote(rel) {
		return Event{}, false
	}

	note := models.NoteFromPath(rel)
	companion, err := w.svc.Resolve(note)
	if err != nil {
		return Event{}, false
	}

	ev := Event{Note: rel, CompanionPath: companion, Exists: w.svc.Exists(ctx, note)}
	w.logger.WithFields(logrus.Fields{
		"note":      ev.Note,
		"companion": ev.CompanionPath,
		"exists":    ev.Exists,
	}).Info("note created")
	return ev, true
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.vault.Root() && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}

func hidden(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
