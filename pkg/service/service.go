package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/companion/pkg/models"
	"github.com/grovetools/companion/pkg/resolver"
	"github.com/grovetools/companion/pkg/reveal"
	"github.com/grovetools/companion/pkg/vault"
)

// LocationSource provides the configured base location for companion folders.
type LocationSource interface {
	CompanionFolderLocation() string
}

// Notifier shows transient notices to the user.
type Notifier interface {
	Notice(message string)
}

// Service is the companion folder service
type Service struct {
	vault    vault.Vault
	settings LocationSource
	revealer reveal.Revealer
	notifier Notifier
	logger   logrus.FieldLogger
}

// New creates a new companion folder service
func New(v vault.Vault, settings LocationSource, options ...Option) *Service {
	s := &Service{
		vault:    v,
		settings: settings,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range options {
		opt(s)
	}

	if s.revealer == nil {
		s.revealer = reveal.NewSystem(s.logger)
	}
	if s.notifier == nil {
		s.notifier = logNotifier{s.logger}
	}
	return s
}

// Vault returns the vault the service operates on.
func (s *Service) Vault() vault.Vault {
	return s.vault
}

// Resolve returns the companion folder path of note under the current
// configuration.
func (s *Service) Resolve(note *models.Note) (string, error) {
	p, ok := resolver.ResolveNote(note, s.settings.CompanionFolderLocation())
	if !ok {
		return "", ErrNotANote
	}
	return p, nil
}

// Exists reports whether anything, file or folder, is at the companion path.
func (s *Service) Exists(ctx context.Context, note *models.Note) bool {
	p, err := s.Resolve(note)
	if err != nil {
		return false
	}

	entry, err := s.vault.GetEntryByPath(ctx, p)
	if err != nil {
		s.logger.WithError(err).WithField("path", p).Warn("companion folder lookup failed")
		return false
	}
	return entry != nil
}

// Get returns the companion folder of note. A file occupying the companion
// path is treated as absent.
func (s *Service) Get(ctx context.Context, note *models.Note) (*models.Entry, error) {
	if !s.Exists(ctx, note) {
		return nil, ErrNoCompanionFolder
	}

	p, _ := s.Resolve(note)
	entry, err := s.vault.GetEntryByPath(ctx, p)
	if err != nil || entry == nil {
		return nil, ErrNoCompanionFolder
	}
	if !entry.IsFolder() {
		s.logger.WithField("path", p).Debug("companion path is occupied by a file")
		return nil, ErrNoCompanionFolder
	}
	return entry, nil
}

// RevealOrCreate creates the companion folder when nothing is at its path and
// reveals it in the system file browser. It returns the resolved path.
//
// The existence check and the create are not atomic. A folder that appears
// in between makes CreateFolder report ErrExist, which counts as success.
func (s *Service) RevealOrCreate(ctx context.Context, note *models.Note) (string, error) {
	if note == nil {
		s.notifier.Notice(ErrRevealTargetUnresolvable.Error())
		return "", nil
	}

	p, err := s.Resolve(note)
	if err != nil {
		s.notifier.Notice(fmt.Sprintf("Cannot reveal companion folder: %s is not a note", note.Path))
		return "", nil
	}

	log := s.logger.WithFields(logrus.Fields{"note": note.Path, "path": p})

	entry, err := s.vault.GetEntryByPath(ctx, p)
	if err != nil {
		log.WithError(err).Warn("companion folder lookup failed")
	}

	if entry == nil {
		if err := s.vault.CreateFolder(ctx, p); err != nil {
			if !errors.Is(err, vault.ErrExist) {
				s.notifier.Notice(fmt.Sprintf("Could not create companion folder %s", p))
				return p, fmt.Errorf("create companion folder: %w", err)
			}
			log.Debug("companion folder appeared before create")
		} else {
			log.Info("created companion folder")
		}
	}

	s.revealer.ShowInSystemFolderBrowser(s.vault.AbsPath(p))
	return p, nil
}

// ListChildren returns the names of the companion folder's direct children
// in vault order. ErrNotANote, ErrNoCompanionFolder and ErrEmptyFolder
// describe the states in which there is nothing to list.
func (s *Service) ListChildren(ctx context.Context, note *models.Note) ([]string, error) {
	if !note.IsNote() {
		return nil, ErrNotANote
	}

	folder, err := s.Get(ctx, note)
	if err != nil {
		return nil, err
	}
	if len(folder.Children) == 0 {
		return nil, ErrEmptyFolder
	}
	return folder.ChildNames(), nil
}

// Option configures the service.
type Option func(*Service)

// WithRevealer replaces the system file-browser revealer.
func WithRevealer(r reveal.Revealer) Option {
	return func(s *Service) {
		s.revealer = r
	}
}

// WithNotifier sets where user notices go.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type logNotifier struct {
	logger logrus.FieldLogger
}

func (n logNotifier) Notice(message string) {
	n.logger.Warn(message)
}
