package i18n

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// PreferenceKey is the storage key under which a visitor's language choice
// is persisted across sessions.
const PreferenceKey = "language"

// PreferenceStore persists a visitor's language choice across sessions.
type PreferenceStore interface {
	Load(ctx context.Context, visitorID string) (string, error)
	Save(ctx context.Context, visitorID, lang string) error
}

// Session holds one visitor's language selection state: the current
// language and a loaded flag that stays false until the persisted
// preference has been checked.
type Session struct {
	bundle    *Bundle
	store     PreferenceStore
	visitorID string
	logger    *zap.Logger

	mu     sync.Mutex
	lang   string
	loaded bool
}

// NewSession creates a session at the default language, not yet loaded.
func NewSession(bundle *Bundle, store PreferenceStore, visitorID string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		bundle:    bundle,
		store:     store,
		visitorID: visitorID,
		logger:    logger,
		lang:      bundle.defaultLang,
	}
}

// Load reads the persisted preference; a stored, supported language is
// adopted as current, anything else leaves the default in place. Marks the
// session loaded either way. A store read failure is not surfaced; the
// visitor just gets the default language.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	stored, err := s.store.Load(ctx, s.visitorID)
	if err != nil {
		s.logger.Warn("load language preference failed", zap.Error(err), zap.String("visitor_id", s.visitorID))
	} else if stored != "" && s.bundle.Supported(stored) {
		s.lang = stored
	}
	s.loaded = true
}

// Language returns the current language code.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Loaded reports whether the persisted preference has been checked.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// ChangeLanguage switches the current language and persists the choice.
// An unsupported code is a silent no-op: no error, no state change.
func (s *Session) ChangeLanguage(ctx context.Context, lang string) {
	if !s.bundle.Supported(lang) {
		return
	}
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	if err := s.store.Save(ctx, s.visitorID, lang); err != nil {
		s.logger.Warn("save language preference failed", zap.Error(err), zap.String("visitor_id", s.visitorID))
	}
}

// T resolves a dotted key in the session's current language.
func (s *Session) T(key string) string {
	return s.bundle.Resolve(s.Language(), key)
}
