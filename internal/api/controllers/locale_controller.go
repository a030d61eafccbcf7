package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskly/internal/locale"
	"taskly/internal/models/request_models"
	"taskly/internal/models/response_models"
	"taskly/pkg/middleware"
	"taskly/pkg/utils"
)

type LocaleController struct{}

func NewLocaleController() *LocaleController {
	return &LocaleController{}
}

// ListLocalesHandler returns the supported languages with their native
// display names and text directions, in registry order.
func (ctl *LocaleController) ListLocalesHandler(c *gin.Context) {
	out := make([]response_models.LocaleInfo, 0, len(locale.Supported()))
	for _, lang := range locale.Supported() {
		out = append(out, response_models.LocaleInfo{
			Code:      string(lang),
			Name:      locale.DisplayName(lang),
			Direction: string(locale.TextDirection(lang)),
		})
	}
	utils.RespondSuccess(c, out, "")
}

func (ctl *LocaleController) GetLanguageHandler(c *gin.Context) {
	sess := middleware.LocaleSession(c)
	if sess == nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondSuccess(c, languageState(sess), "")
}

// ChangeLanguageHandler switches the session language. The preference is
// persisted and the document attributes reflect the new language in this same
// response. Unknown codes are rejected without touching the session.
func (ctl *LocaleController) ChangeLanguageHandler(c *gin.Context) {
	sess := middleware.LocaleSession(c)
	if sess == nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req request_models.ChangeLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil || !locale.IsSupported(req.Language) {
		utils.RespondError(c, http.StatusBadRequest, "Unsupported language")
		return
	}

	sess.ChangeLanguage(locale.Language(req.Language))

	utils.RespondSuccess(c, languageState(sess), sess.Localize("LanguageChanged"))
}

func languageState(sess *locale.Session) response_models.LanguageState {
	return response_models.LanguageState{
		Language:  string(sess.Current()),
		Direction: string(sess.Direction()),
		Ready:     sess.Ready(),
	}
}
