package locale

import (
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	preferenceTTL = 180 * 24 * time.Hour

	// notReadyPlaceholder is what dependent layers render instead of
	// untranslated message keys while the bundle is still unavailable.
	notReadyPlaceholder = "…"
)

// PreferenceStore persists a session's chosen language across requests.
type PreferenceStore interface {
	Set(sessionID string, language string, ttl time.Duration)
	Get(sessionID string) (string, bool)
}

// DocumentSink receives the document-level direction/language attributes.
// The bound sink is invoked synchronously on every language change.
type DocumentSink func(dir Direction, lang Language)

var supportedTags = func() []language.Tag {
	tags := make([]language.Tag, 0, len(supportedLanguages))
	for _, l := range supportedLanguages {
		tags = append(tags, language.Make(string(l)))
	}
	return tags
}()

var matcher = language.NewMatcher(supportedTags)

// MatchAcceptLanguage resolves an Accept-Language header against the
// supported set. The second return value is false when nothing matched.
func MatchAcceptLanguage(header string) (Language, bool) {
	if header == "" {
		return DefaultLanguage, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage, false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage, false
	}
	return supportedLanguages[idx], true
}

// Session resolves and carries the active language for one browser session.
// The active language comes from, in priority order: the persisted
// preference, the Accept-Language signal, the fixed default.
type Session struct {
	mu        sync.RWMutex
	sessionID string
	current   Language
	store     PreferenceStore
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	sink      DocumentSink
}

func NewSession(sessionID string, bundle *i18n.Bundle, store PreferenceStore, acceptLanguage string) *Session {
	current := DefaultLanguage
	if stored, ok := store.Get(sessionID); ok && IsSupported(stored) {
		current = Language(stored)
	} else if matched, ok := MatchAcceptLanguage(acceptLanguage); ok {
		current = matched
	}

	s := &Session{
		sessionID: sessionID,
		current:   current,
		store:     store,
		bundle:    bundle,
	}
	if bundle != nil {
		s.localizer = i18n.NewLocalizer(bundle, string(current))
	}
	return s
}

// Ready reports whether the message bundle behind this session has loaded.
// Until then Localize returns a placeholder instead of untranslated keys.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle != nil
}

func (s *Session) Current() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Session) Direction() Direction {
	return TextDirection(s.Current())
}

// DocumentAttributes returns the direction/language pair dependent
// presentation must carry; always consistent with Current().
func (s *Session) DocumentAttributes() (Direction, Language) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TextDirection(s.current), s.current
}

// BindDocument registers the presentation sink and pushes the current
// attributes immediately.
func (s *Session) BindDocument(sink DocumentSink) {
	s.mu.Lock()
	s.sink = sink
	dir, lang := TextDirection(s.current), s.current
	s.mu.Unlock()

	if sink != nil {
		sink(dir, lang)
	}
}

// ChangeLanguage switches the active language, persists the preference and
// notifies the bound document sink before returning, so a subsequent read of
// Current and the document attributes observe the new value.
func (s *Session) ChangeLanguage(lang Language) {
	s.mu.Lock()
	s.current = lang
	if s.bundle != nil {
		s.localizer = i18n.NewLocalizer(s.bundle, string(lang))
	}
	sink := s.sink
	s.mu.Unlock()

	s.store.Set(s.sessionID, string(lang), preferenceTTL)
	if sink != nil {
		sink(TextDirection(lang), lang)
	}
}

// Localize renders the message for messageID in the active language. Before
// the bundle is ready it returns a placeholder; unknown IDs fall back to the
// ID itself.
func (s *Session) Localize(messageID string) string {
	s.mu.RLock()
	localizer := s.localizer
	s.mu.RUnlock()

	if localizer == nil {
		return notReadyPlaceholder
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
