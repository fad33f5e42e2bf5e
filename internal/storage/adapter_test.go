package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenBackend fails every call, like a browser with storage disabled.
type brokenBackend struct {
	panics bool
}

func (b brokenBackend) Get(string) (string, bool, error) {
	if b.panics {
		panic("storage disabled")
	}
	return "", false, errors.New("storage disabled")
}

func (b brokenBackend) Set(string, string) error {
	if b.panics {
		panic("quota exceeded")
	}
	return errors.New("quota exceeded")
}

func (brokenBackend) Close() error { return nil }

func TestAdapter_ReadIDs(t *testing.T) {
	backend := NewMemoryBackend()
	adapter := NewAdapter(backend, newTestLogger())
	def := []string{"default"}

	// Missing key
	assert.Equal(t, def, adapter.ReadIDs("missing", def))

	// Malformed JSON
	require.NoError(t, backend.Set("corrupt", "{not json"))
	assert.Equal(t, def, adapter.ReadIDs("corrupt", def))

	// Wrong JSON shape
	require.NoError(t, backend.Set("object", `{"a":1}`))
	assert.Equal(t, def, adapter.ReadIDs("object", def))

	// JSON null
	require.NoError(t, backend.Set("null", `null`))
	assert.Equal(t, def, adapter.ReadIDs("null", def))

	// Well-formed
	require.NoError(t, backend.Set("ok", `["a","b"]`))
	assert.Equal(t, []string{"a", "b"}, adapter.ReadIDs("ok", def))
}

func TestAdapter_WriteIDs(t *testing.T) {
	backend := NewMemoryBackend()
	adapter := NewAdapter(backend, newTestLogger())

	adapter.WriteIDs("ids", []string{"x", "y"})
	raw, found, err := backend.Get("ids")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `["x","y"]`, raw)

	adapter.WriteIDs("ids", nil)
	raw, _, _ = backend.Get("ids")
	assert.Equal(t, `[]`, raw, "nil should persist as an empty array")
}

func TestAdapter_UnavailableBackend(t *testing.T) {
	for _, panics := range []bool{false, true} {
		adapter := NewAdapter(brokenBackend{panics: panics}, newTestLogger())

		assert.NotPanics(t, func() {
			adapter.WriteIDs("lb_bookmarks", []string{"a"})
		})
		var got []string
		assert.NotPanics(t, func() {
			got = adapter.ReadIDs("lb_bookmarks", []string{})
		})
		assert.Equal(t, []string{}, got)
	}
}

func TestAdapter_ReadJSON(t *testing.T) {
	backend := NewMemoryBackend()
	adapter := NewAdapter(backend, newTestLogger())

	type record struct {
		Name string `json:"name"`
	}

	var out []record
	assert.False(t, adapter.ReadJSON("records", &out))
	assert.Nil(t, out)

	adapter.WriteJSON("records", []record{{Name: "Flowboard"}})
	assert.True(t, adapter.ReadJSON("records", &out))
	assert.Equal(t, []record{{Name: "Flowboard"}}, out)

	// Unencodable values are dropped without touching the stored value
	adapter.WriteJSON("records", make(chan int))
	raw, _, _ := backend.Get("records")
	assert.Equal(t, `[{"name":"Flowboard"}]`, raw)
}
