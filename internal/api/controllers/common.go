package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskly/pkg/middleware"
	"taskly/pkg/utils"
)

// currentUserID pulls the authenticated user id set by the auth middleware.
// A missing or malformed id writes the 401 response itself.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return id, true
}

// localize renders a message in the request's active language, falling back
// to the given string when no locale session is attached.
func localize(c *gin.Context, messageID string, fallback string) string {
	sess := middleware.LocaleSession(c)
	if sess == nil {
		return fallback
	}
	return sess.Localize(messageID)
}
