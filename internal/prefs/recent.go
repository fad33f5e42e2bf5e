package prefs

import (
	"slices"
	"sync"
)

// MaxRecent bounds the recently-viewed list.
const MaxRecent = 3

// Recent is a most-recently-viewed list of item ids with no duplicates.
type Recent struct {
	mu    sync.RWMutex
	store Persister
	key   string
	ids   []string
}

func NewRecent(store Persister, key string) *Recent {
	r := &Recent{store: store, key: key}
	r.ids = bound(store.ReadIDs(key, []string{}))
	return r
}

// Track moves id to the front, evicting the oldest entry past MaxRecent.
func (r *Recent) Track(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]string, 0, MaxRecent+1)
	next = append(next, id)
	for _, v := range r.ids {
		if v != id {
			next = append(next, v)
		}
	}
	r.ids = bound(next)
	r.store.WriteIDs(r.key, r.ids)
}

// IDs returns the list most-recent first.
func (r *Recent) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ids)
}

// bound drops duplicates and truncates to MaxRecent.
func bound(ids []string) []string {
	out := make([]string, 0, MaxRecent)
	for _, id := range ids {
		if len(out) == MaxRecent {
			break
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
