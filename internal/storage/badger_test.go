package storage

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a logger that only surfaces errors.
func newTestLogger() *logrus.Logger {
	testLogger := logrus.New()
	testLogger.SetOutput(os.Stderr)        // Send logs to stderr during tests
	testLogger.SetLevel(logrus.ErrorLevel) // Only show errors by default
	return testLogger
}

// setupTestDB creates a temporary BadgerDB backend for testing.
// It returns the backend and a cleanup function.
func setupTestDB(t *testing.T) (*BadgerBackend, func()) {
	t.Helper()

	// t.TempDir() removes the directory after the test completes.
	tempDir := t.TempDir()

	backend, err := NewBadgerBackend(tempDir, newTestLogger())
	require.NoError(t, err, "Failed to create test BadgerDB backend")

	cleanup := func() {
		err := backend.Close()
		assert.NoError(t, err, "Failed to close test BadgerDB backend")
	}

	return backend, cleanup
}

func TestBadgerBackend_SetAndGet(t *testing.T) {
	backend, cleanup := setupTestDB(t)
	defer cleanup()

	// --- Missing key ---
	value, found, err := backend.Get("lb_bookmarks")
	require.NoError(t, err, "Getting a missing key should not error")
	assert.False(t, found)
	assert.Empty(t, value)

	// --- Set then Get ---
	err = backend.Set("lb_bookmarks", `["s1","s2"]`)
	require.NoError(t, err, "Failed to set key")

	value, found, err = backend.Get("lb_bookmarks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["s1","s2"]`, value)

	// --- Overwrite ---
	err = backend.Set("lb_bookmarks", `[]`)
	require.NoError(t, err, "Failed to overwrite key")

	value, found, err = backend.Get("lb_bookmarks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)

	// --- Other keys are untouched ---
	_, found, err = backend.Get("lb_recent")
	require.NoError(t, err)
	assert.False(t, found, "Writing one key must not create another")
}

func TestBadgerBackend_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewBadgerBackend(dir, newTestLogger())
	require.NoError(t, err)
	require.NoError(t, backend.Set("serviq_favorites", `["ac-1"]`))
	require.NoError(t, backend.Close())

	reopened, err := NewBadgerBackend(dir, newTestLogger())
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get("serviq_favorites")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["ac-1"]`, value)
}
