package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"taskly/internal/locale"
)

const (
	localeSessionCookie = "taskly_sid"
	localeSessionKey    = "locale_session"
	localeCookieMaxAge  = int(180 * 24 * time.Hour / time.Second)
)

// LocaleMiddleware resolves the language session for each request and binds
// the document-level attributes to the response headers. Handlers read the
// session via LocaleSession.
func LocaleMiddleware(bundle *goi18n.Bundle, store locale.PreferenceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(localeSessionCookie)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(localeSessionCookie, sid, localeCookieMaxAge, "/", "", false, true)
		}

		sess := locale.NewSession(sid, bundle, store, c.GetHeader("Accept-Language"))
		sess.BindDocument(func(dir locale.Direction, lang locale.Language) {
			c.Writer.Header().Set("Content-Language", string(lang))
			c.Writer.Header().Set("X-Text-Direction", string(dir))
		})

		c.Set(localeSessionKey, sess)
		c.Next()
	}
}

func LocaleSession(c *gin.Context) *locale.Session {
	if v, ok := c.Get(localeSessionKey); ok {
		if sess, ok := v.(*locale.Session); ok {
			return sess
		}
	}
	return nil
}
