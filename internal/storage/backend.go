package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is the key-value port the preference stores persist through.
// This allows swapping the durable store (BadgerDB, SQLite, memory)
// without touching the stores that use it.
type Backend interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Close releases the backend's resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Options selects and locates a backend.
type Options struct {
	Kind       string
	BadgerPath string
	SQLitePath string
}

// Open constructs the backend named by opts.Kind.
func Open(opts Options, logger logrus.FieldLogger) (Backend, error) {
	switch strings.ToLower(opts.Kind) {
	case BackendBadger, "":
		return NewBadgerBackend(opts.BadgerPath, logger)
	case BackendSQLite:
		return NewSQLiteBackend(opts.SQLitePath, logger)
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Kind)
	}
}
