package app

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"listbase/internal/domain"
	"listbase/internal/prefs"
	"listbase/internal/scraper"
)

// Manager hands out one Session per user, created on first use. Each
// user's keys are namespaced so users sharing a backend never collide.
type Manager struct {
	variant domain.Variant
	items   []domain.Item
	store   prefs.Persister
	scraper scraper.Scraper
	now     func() time.Time
	log     logrus.FieldLogger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(variant domain.Variant, items []domain.Item, store prefs.Persister, sc scraper.Scraper, logger logrus.FieldLogger) *Manager {
	return &Manager{
		variant:  variant,
		items:    items,
		store:    store,
		scraper:  sc,
		now:      time.Now,
		log:      logger,
		sessions: make(map[string]*Session),
	}
}

// Session returns the session for userID, creating it if needed.
// The empty user id maps to the un-namespaced keys of a single local user.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := NewSession(Options{
		Variant: m.variant,
		Items:   m.items,
		Store:   m.store,
		Keys:    domain.StorageKeys(m.variant).Namespaced(userID),
		Scraper: m.scraper,
		Now:     m.now,
	}, m.log.WithField("user_id", userID))
	m.sessions[userID] = s
	m.log.WithField("user_id", userID).Debug("Session created")
	return s
}
