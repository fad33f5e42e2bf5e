package storage

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Adapter reads and writes JSON-encoded values through a Backend.
// None of its methods fail: a missing, corrupt or unreachable value reads
// back as the caller's default, and write failures are logged and dropped.
// Callers keep their in-memory state authoritative for the session.
type Adapter struct {
	backend Backend
	log     logrus.FieldLogger
}

func NewAdapter(backend Backend, logger logrus.FieldLogger) *Adapter {
	return &Adapter{
		backend: backend,
		log:     logger.WithField("component", "persistence"),
	}
}

// ReadIDs decodes a JSON string array stored under key, or returns def.
func (a *Adapter) ReadIDs(key string, def []string) []string {
	var ids []string
	if !a.ReadJSON(key, &ids) {
		return def
	}
	if ids == nil {
		return def
	}
	return ids
}

// WriteIDs stores ids as a JSON array. A nil slice is written as [].
func (a *Adapter) WriteIDs(key string, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	a.WriteJSON(key, ids)
}

// ReadJSON decodes the value under key into v and reports whether it did.
// A false result may leave v partially decoded, so decode into a fresh value.
func (a *Adapter) ReadJSON(key string, v any) (ok bool) {
	log := a.log.WithField("key", key)

	// A misbehaving backend must not take the caller down with it.
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("Persistence backend panicked on read, using default")
			ok = false
		}
	}()

	raw, found, err := a.backend.Get(key)
	if err != nil {
		log.WithError(err).Warn("Persistence unavailable, using default")
		return false
	}
	if !found || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.WithError(err).Warn("Persisted value is malformed, using default")
		return false
	}
	return true
}

// WriteJSON encodes v and stores it under key, swallowing any failure.
func (a *Adapter) WriteJSON(key string, v any) {
	log := a.log.WithField("key", key)

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("Persistence backend panicked on write, change kept in memory only")
		}
	}()

	raw, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Warn("Failed to encode value, change kept in memory only")
		return
	}
	if err := a.backend.Set(key, string(raw)); err != nil {
		log.WithError(err).Warn("Failed to persist value, change kept in memory only")
		return
	}
	log.Debug("Value persisted")
}
