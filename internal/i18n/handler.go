package i18n

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hopeharbor/backend/pkg/response"
)

// Cookie names mirroring the persisted client state.
const (
	CookieLanguage = "language"
	CookieVisitor  = "visitor_id"
)

// Handler serves the localization endpoints.
type Handler struct {
	bundle       *Bundle
	store        PreferenceStore
	logger       *zap.Logger
	cookieMaxAge int
}

// NewHandler creates an i18n handler. cookieMaxAge is in seconds.
func NewHandler(bundle *Bundle, store PreferenceStore, cookieMaxAge int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{bundle: bundle, store: store, logger: logger, cookieMaxAge: cookieMaxAge}
}

// session builds the visitor's language session: visitor id from cookie
// (minted when absent), language from the language cookie when valid,
// otherwise from the preference store.
func (h *Handler) session(c *gin.Context) *Session {
	visitorID, err := c.Cookie(CookieVisitor)
	if err != nil || visitorID == "" {
		visitorID = uuid.New().String()
		c.SetCookie(CookieVisitor, visitorID, h.cookieMaxAge, "/", "", false, true)
	}
	s := NewSession(h.bundle, h.store, visitorID, h.logger)
	if lang, err := c.Cookie(CookieLanguage); err == nil && h.bundle.Supported(lang) {
		s.mu.Lock()
		s.lang = lang
		s.loaded = true
		s.mu.Unlock()
		return s
	}
	s.Load(c.Request.Context())
	return s
}

// Languages handles GET /i18n/languages.
func (h *Handler) Languages(c *gin.Context) {
	s := h.session(c)
	response.OK(c, gin.H{
		"languages": h.bundle.Languages(),
		"current":   s.Language(),
		"default":   h.bundle.defaultLang,
		"loaded":    s.Loaded(),
	})
}

// Translations handles GET /i18n/translations. Returns the current
// language's tree plus the default tree so clients can apply the same
// fallback walk locally.
func (h *Handler) Translations(c *gin.Context) {
	s := h.session(c)
	lang := s.Language()
	response.OK(c, gin.H{
		"language": lang,
		"messages": h.bundle.Table(lang),
		"fallback": h.bundle.Table(h.bundle.defaultLang),
	})
}

// ChangeLanguageRequest is the body for PUT /i18n/language.
type ChangeLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// ChangeLanguage handles PUT /i18n/language. An unsupported code is a
// silent no-op: the response still succeeds with the unchanged language.
func (h *Handler) ChangeLanguage(c *gin.Context) {
	var req ChangeLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	s := h.session(c)
	s.ChangeLanguage(c.Request.Context(), req.Language)
	if h.bundle.Supported(req.Language) {
		c.SetCookie(CookieLanguage, req.Language, h.cookieMaxAge, "/", "", false, false)
	}
	response.OK(c, gin.H{"language": s.Language()})
}
