package prefs

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"listbase/internal/storage"
)

// failingBackend accepts reads of nothing and rejects every write.
type failingBackend struct{}

func (failingBackend) Get(string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}
func (failingBackend) Set(string, string) error { return errors.New("quota exceeded") }
func (failingBackend) Close() error             { return nil }

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newMemoryAdapter returns an adapter over a fresh in-memory backend.
func newMemoryAdapter(t *testing.T) (*storage.Adapter, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	return storage.NewAdapter(backend, quietLogger()), backend
}
