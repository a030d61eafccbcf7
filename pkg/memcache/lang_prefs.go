// pkg/memcache/lang_prefs.go
package mem

import (
	"sync"
	"time"
)

// LanguagePreferenceStore persists the language choice for a browser session.
type LanguagePreferenceStore interface {
	Set(sessionID string, language string, ttl time.Duration)

	// Get returns the stored language for sessionID if not expired.
	// Returns "" and false if missing/expired.
	Get(sessionID string) (string, bool)
}

type langEntry struct {
	language  string
	expiresAt time.Time
}

type LanguagePreferences struct {
	mu   sync.RWMutex
	data map[string]langEntry
}

func NewLanguagePreferences() *LanguagePreferences {
	return &LanguagePreferences{
		data: make(map[string]langEntry),
	}
}

func (s *LanguagePreferences) Set(sessionID string, language string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = langEntry{
		language:  language,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *LanguagePreferences) Get(sessionID string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, sessionID) // cleanup expired
		s.mu.Unlock()
		return "", false
	}
	return e.language, true
}
