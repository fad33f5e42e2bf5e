package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	logger := newTestLogger()

	tests := []struct {
		name string
		opts Options
	}{
		{name: "badger", opts: Options{Kind: BackendBadger, BadgerPath: filepath.Join(dir, "badger")}},
		{name: "default is badger", opts: Options{BadgerPath: filepath.Join(dir, "badger-default")}},
		{name: "sqlite", opts: Options{Kind: BackendSQLite, SQLitePath: filepath.Join(dir, "prefs.db")}},
		{name: "memory", opts: Options{Kind: "MEMORY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := Open(tt.opts, logger)
			require.NoError(t, err)
			defer backend.Close()

			require.NoError(t, backend.Set("k", "v"))
			value, found, err := backend.Get("k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "v", value)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Options{Kind: "redis"}, newTestLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestSQLiteBackend(t *testing.T) {
	backend, err := NewSQLiteBackend(":memory:", newTestLogger())
	require.NoError(t, err)
	defer backend.Close()

	_, found, err := backend.Get("lb_recent")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, backend.Set("lb_recent", `["a"]`))
	require.NoError(t, backend.Set("lb_recent", `["b","a"]`))

	value, found, err := backend.Get("lb_recent")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["b","a"]`, value)

	require.NoError(t, backend.Close())
	_, _, err = backend.Get("lb_recent")
	assert.ErrorIs(t, err, ErrBackendClosed)
	assert.ErrorIs(t, backend.Set("lb_recent", "[]"), ErrBackendClosed)
	assert.NoError(t, backend.Close(), "Closing twice should not error")
}

func TestSQLiteBackend_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	backend, err := NewSQLiteBackend(path, newTestLogger())
	require.NoError(t, err)
	require.NoError(t, backend.Set("lb_notif_read", `["n1"]`))
	require.NoError(t, backend.Close())

	reopened, err := NewSQLiteBackend(path, newTestLogger())
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get("lb_notif_read")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["n1"]`, value)
}

func TestMemoryBackend(t *testing.T) {
	backend := NewMemoryBackend()

	require.NoError(t, backend.Set("a", "1"))
	value, found, err := backend.Get("a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", value)

	require.NoError(t, backend.Close())
	_, found, err = backend.Get("a")
	require.NoError(t, err)
	assert.False(t, found, "Close should drop all values")
}
