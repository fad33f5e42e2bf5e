package prefs

import (
	"slices"
	"sync"

	"listbase/internal/domain"
)

// ReadState tracks which notifications of a fixed catalog have been read.
// Ids are only ever added, except by MarkAllRead which resets the set to
// exactly the catalog.
type ReadState struct {
	mu      sync.RWMutex
	store   Persister
	key     string
	catalog []domain.Notification
	order   []string
	read    map[string]struct{}
}

func NewReadState(store Persister, key string, catalog []domain.Notification) *ReadState {
	rs := &ReadState{
		store:   store,
		key:     key,
		catalog: slices.Clone(catalog),
		read:    make(map[string]struct{}),
	}
	for _, id := range store.ReadIDs(key, []string{}) {
		rs.add(id)
	}
	return rs
}

func (rs *ReadState) add(id string) bool {
	if _, ok := rs.read[id]; ok {
		return false
	}
	rs.read[id] = struct{}{}
	rs.order = append(rs.order, id)
	return true
}

// MarkRead records id as read. Already-read ids are not written again.
func (rs *ReadState) MarkRead(id string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.add(id) {
		rs.store.WriteIDs(rs.key, rs.order)
	}
}

// MarkAllRead replaces the read set with every catalog id.
func (rs *ReadState) MarkAllRead() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.read = make(map[string]struct{}, len(rs.catalog))
	rs.order = make([]string, 0, len(rs.catalog))
	for _, n := range rs.catalog {
		rs.add(n.ID)
	}
	rs.store.WriteIDs(rs.key, rs.order)
}

func (rs *ReadState) IsRead(id string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	_, ok := rs.read[id]
	return ok
}

// UnreadCount counts catalog entries not yet read. Read ids that are no
// longer in the catalog are ignored.
func (rs *ReadState) UnreadCount() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	unread := 0
	for _, n := range rs.catalog {
		if _, ok := rs.read[n.ID]; !ok {
			unread++
		}
	}
	return unread
}

// Catalog returns the notifications this tracker counts against.
func (rs *ReadState) Catalog() []domain.Notification {
	return slices.Clone(rs.catalog)
}
