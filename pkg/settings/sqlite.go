package settings

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultKey is the key the settings blob is stored under.
const DefaultKey = "companion-folder"

// SQLiteHost keeps settings blobs in a key-value table. One database can hold
// the settings of several vaults, keyed by vault.
type SQLiteHost struct {
	db  *sql.DB
	key string
}

// NewSQLiteHost opens (or creates) the database in dataDir.
func NewSQLiteHost(dataDir, key string) (*SQLiteHost, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "settings.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if key == "" {
		key = DefaultKey
	}
	h := &SQLiteHost{db: db, key: key}

	if err := h.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize settings database: %w", err)
	}

	return h, nil
}

// init creates the database schema
func (h *SQLiteHost) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plugin_data (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := h.db.Exec(schema)
	return err
}

func (h *SQLiteHost) LoadData(ctx context.Context) ([]byte, error) {
	var value string
	err := h.db.QueryRowContext(ctx, "SELECT value FROM plugin_data WHERE key = ?", h.key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (h *SQLiteHost) SaveData(ctx context.Context, data []byte) error {
	query := `
	INSERT OR REPLACE INTO plugin_data (key, value, updated_at)
	VALUES (?, ?, ?)
	`

	_, err := h.db.ExecContext(ctx, query, h.key, string(data), time.Now())
	return err
}

// Close closes the settings database
func (h *SQLiteHost) Close() error {
	return h.db.Close()
}
