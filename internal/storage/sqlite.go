package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// ErrBackendClosed is returned by SQLiteBackend after Close.
var ErrBackendClosed = errors.New("storage backend is closed")

// SQLiteBackend implements Backend on a single kv table.
type SQLiteBackend struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
	log    logrus.FieldLogger
}

// NewSQLiteBackend opens (or creates) the database file at dbPath.
// Use ":memory:" for a throwaway database.
func NewSQLiteBackend(dbPath string, logger logrus.FieldLogger) (*SQLiteBackend, error) {
	dsn := dbPath
	if dbPath != ":memory:" {
		dsn = dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", dbPath, err)
	}
	// A single connection keeps :memory: databases from splitting per connection.
	db.SetMaxOpenConns(1)

	b := &SQLiteBackend{db: db, log: logger.WithField("component", "storage")}
	if err := b.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize sqlite database: %w", err)
	}
	logger.Info("SQLite opened successfully at path: ", dbPath)
	return b, nil
}

func (b *SQLiteBackend) initialize() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

func (b *SQLiteBackend) Get(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return "", false, ErrBackendClosed
	}

	var value string
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (b *SQLiteBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBackendClosed
	}

	_, err := b.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.log.Info("Closing SQLite...")
	return b.db.Close()
}
