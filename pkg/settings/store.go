// Package settings holds the companion folder configuration and its
// load/save lifecycle. Persistence is delegated to a Host.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/companion/pkg/models"
)

// Host persists the settings blob. LoadData returns nil data when nothing
// has been stored yet.
type Host interface {
	LoadData(ctx context.Context) ([]byte, error)
	SaveData(ctx context.Context, data []byte) error
}

// Store holds the current settings.
type Store struct {
	host   Host
	logger logrus.FieldLogger

	mu       sync.RWMutex
	settings models.Settings
}

// NewStore returns a store holding the defaults. Call Load to read the
// persisted values.
func NewStore(host Host, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		host:     host,
		logger:   logger,
		settings: models.DefaultSettings,
	}
}

// Load merges the persisted settings over the defaults. Keys present in the
// persisted object win; missing keys keep their default.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.host.LoadData(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	merged := models.DefaultSettings
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &merged); err != nil {
			return fmt.Errorf("decode settings: %w", err)
		}
	}

	s.mu.Lock()
	s.settings = merged
	s.mu.Unlock()

	s.logger.WithField("companion_folder_location", merged.CompanionFolderLocation).Debug("settings loaded")
	return nil
}

// Save persists the full settings object as is.
func (s *Store) Save(ctx context.Context) error {
	current := s.Get()

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.host.SaveData(ctx, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (s *Store) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// CompanionFolderLocation returns the configured base location.
func (s *Store) CompanionFolderLocation() string {
	return s.Get().CompanionFolderLocation
}

// SetCompanionFolderLocation stores a new base location and saves. The value
// is kept verbatim; normalization happens when a path is resolved.
func (s *Store) SetCompanionFolderLocation(ctx context.Context, value string) error {
	s.mu.Lock()
	s.settings.CompanionFolderLocation = value
	s.mu.Unlock()

	return s.Save(ctx)
}
