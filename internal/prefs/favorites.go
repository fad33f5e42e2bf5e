package prefs

import (
	"slices"
	"sync"
)

// Favorites is a toggleable set of item ids (favorites in the service
// catalog, bookmarks in the startup catalog).
type Favorites struct {
	mu    sync.RWMutex
	store Persister
	key   string
	order []string
	set   map[string]struct{}
}

// NewFavorites loads the set stored under key. Duplicate ids in the stored
// list collapse to their first occurrence.
func NewFavorites(store Persister, key string) *Favorites {
	f := &Favorites{store: store, key: key, set: make(map[string]struct{})}
	for _, id := range store.ReadIDs(key, []string{}) {
		if _, dup := f.set[id]; dup {
			continue
		}
		f.set[id] = struct{}{}
		f.order = append(f.order, id)
	}
	return f
}

// IsFavorite reports membership.
func (f *Favorites) IsFavorite(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.set[id]
	return ok
}

// Toggle flips membership of id, persists the full set and returns the new state.
func (f *Favorites) Toggle(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, had := f.set[id]
	if had {
		delete(f.set, id)
		f.order = slices.DeleteFunc(f.order, func(v string) bool { return v == id })
	} else {
		f.set[id] = struct{}{}
		f.order = append(f.order, id)
	}
	f.store.WriteIDs(f.key, f.order)
	return !had
}

// IDs returns the members in the order they were added.
func (f *Favorites) IDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.order)
}

func (f *Favorites) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.order)
}
