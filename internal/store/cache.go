// Package store persists the ledger document and UI preferences in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/snapshot"

	_ "modernc.org/sqlite" // register sqlite driver
)

const (
	// DocumentKey names the row holding the current ledger document.
	DocumentKey = "spending_app_data_v1"
	// UIModeKey names the UI layout preference.
	UIModeKey = "spending_app_ui_mode"

	// maxBackups bounds how many pre-import backups are kept.
	maxBackups = 10
)

// UI layout modes.
const (
	UIDesktop = "desktop"
	UIMobile  = "mobile"
)

// DB is the SQLite-backed ledger store.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath and applies migrations.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if err := migrateUp(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Load returns the saved ledger, or nil when nothing has been saved yet.
func (d *DB) Load() (*model.Ledger, error) {
	var body string
	err := d.db.QueryRow("SELECT body FROM documents WHERE key = ?", DocumentKey).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	l, err := snapshot.Decode([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return &l, nil
}

// Save replaces the stored ledger document with l.
func (d *DB) Save(l model.Ledger) error {
	body, err := snapshot.Encode(l)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(`INSERT OR REPLACE INTO documents (key, body, saved_at) VALUES (?, ?, ?)`,
		DocumentKey, string(body), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// SavedAt reports when the ledger was last saved, zero if never.
func (d *DB) SavedAt() (time.Time, error) {
	var s string
	err := d.db.QueryRow("SELECT saved_at FROM documents WHERE key = ?", DocumentKey).Scan(&s)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, s)
}

// Backup copies the current document into the backup table, keeping only the
// most recent few. It does nothing when no document is saved.
func (d *DB) Backup() error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO backups (body, taken_at)
		SELECT body, ? FROM documents WHERE key = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), DocumentKey)
	if err != nil {
		return fmt.Errorf("backing up ledger: %w", err)
	}
	_, err = tx.Exec(`DELETE FROM backups WHERE id NOT IN
		(SELECT id FROM backups ORDER BY id DESC LIMIT ?)`, maxBackups)
	if err != nil {
		return fmt.Errorf("pruning backups: %w", err)
	}
	return tx.Commit()
}

// BackupCount returns the number of retained backups.
func (d *DB) BackupCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM backups").Scan(&n)
	return n, err
}

// UIMode returns the stored layout preference, desktop by default.
func (d *DB) UIMode() (string, error) {
	var v string
	err := d.db.QueryRow("SELECT value FROM preferences WHERE key = ?", UIModeKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return UIDesktop, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading ui mode: %w", err)
	}
	return v, nil
}

// SetUIMode stores the layout preference.
func (d *DB) SetUIMode(mode string) error {
	if mode != UIDesktop && mode != UIMobile {
		return fmt.Errorf("%w: ui mode must be %q or %q", model.ErrInvalidArgument, UIDesktop, UIMobile)
	}
	_, err := d.db.Exec("INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)", UIModeKey, mode)
	if err != nil {
		return fmt.Errorf("saving ui mode: %w", err)
	}
	return nil
}

// Saver persists a ledger.
type Saver interface {
	Save(model.Ledger) error
}

// Autosave returns a change subscriber that saves every committed state.
// Failures are logged and not retried.
func Autosave(s Saver, log zerolog.Logger) func(model.Ledger) {
	return func(l model.Ledger) {
		if err := s.Save(l); err != nil {
			log.Error().Err(err).Msg("autosave failed")
			return
		}
		log.Debug().Msg("ledger saved")
	}
}
