package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// BadgerBackend implements Backend using BadgerDB.
type BadgerBackend struct {
	db  *badger.DB
	log logrus.FieldLogger
}

// NewBadgerBackend creates and initializes a new BadgerDB backend.
// It opens the database at the specified path.
func NewBadgerBackend(dbPath string, logger logrus.FieldLogger) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(dbPath)
	// Route Badger's internal logging through logrus
	opts.Logger = &badgerLogger{logger.WithField("component", "badgerdb")}

	db, err := badger.Open(opts)
	if err != nil {
		logger.WithError(err).Error("Failed to open BadgerDB")
		return nil, fmt.Errorf("failed to open badger db at %s: %w", dbPath, err)
	}
	logger.Info("BadgerDB opened successfully at path: ", dbPath)

	return &BadgerBackend{
		db:  db,
		log: logger.WithField("component", "storage"),
	}, nil
}

// Close closes the BadgerDB database.
func (b *BadgerBackend) Close() error {
	b.log.Info("Closing BadgerDB...")
	err := b.db.Close()
	if err != nil {
		b.log.WithError(err).Error("Error closing BadgerDB")
		return err
	}
	b.log.Info("BadgerDB closed.")
	return nil
}

// Get reads a value in a read-only transaction.
func (b *BadgerBackend) Get(key string) (string, bool, error) {
	var (
		value []byte
		found bool
	)
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		// Values are only valid inside the transaction
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		b.log.WithError(err).WithField("key", key).Error("Failed to read key from BadgerDB")
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return string(value), found, nil
}

// Set overwrites key with value.
func (b *BadgerBackend) Set(key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), []byte(value)))
	})
	if err != nil {
		b.log.WithError(err).WithField("key", key).Error("Failed to write key to BadgerDB")
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	b.log.WithField("key", key).Debug("Key written")
	return nil
}

// --- BadgerDB Internal Logger ---

// badgerLogger adapts logrus.FieldLogger to Badger's logger interface.
type badgerLogger struct {
	logger logrus.FieldLogger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Errorf(f, v...)
}
func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warningf(f, v...)
}
func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Infof(f, v...)
}
func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Debugf(f, v...)
}
