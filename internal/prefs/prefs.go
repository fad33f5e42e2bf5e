// Package prefs holds the per-user preference stores. Each store owns
// exactly one storage key and writes its whole state through the
// persistence adapter after every mutation.
package prefs

// Persister is the slice of storage.Adapter the stores depend on.
type Persister interface {
	ReadIDs(key string, def []string) []string
	WriteIDs(key string, ids []string)
	ReadJSON(key string, v any) bool
	WriteJSON(key string, v any)
}
