package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DataDirName is the per-vault folder holding the settings file.
const DataDirName = ".companion"

// FileHost stores the settings blob as a JSON file.
type FileHost struct {
	path string
}

// NewFileHost stores settings at path.
func NewFileHost(path string) *FileHost {
	return &FileHost{path: path}
}

// NewVaultFileHost stores settings in <vault>/.companion/data.json.
func NewVaultFileHost(vaultRoot string) *FileHost {
	return NewFileHost(filepath.Join(vaultRoot, DataDirName, "data.json"))
}

// Path returns the settings file location.
func (h *FileHost) Path() string {
	return h.path
}

func (h *FileHost) LoadData(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", h.path, err)
	}
	return data, nil
}

func (h *FileHost) SaveData(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	// Replace via a temp file.
	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
