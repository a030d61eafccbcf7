package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSecurityRouter() *gin.Engine {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware())
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", handler)
	r.GET("/pricing", handler)
	r.GET("/api/plans", handler)
	r.GET("/static/app.js", handler)
	r.GET("/images/logo.png", handler)
	r.GET("/favicon.ico", handler)
	return r
}

func TestSecurityHeaders(t *testing.T) {
	r := newSecurityRouter()

	tests := []struct {
		path    string
		wantCSP bool
	}{
		{"/", true},
		{"/pricing", true},
		{"/api/plans", false},
		{"/static/app.js", false},
		{"/images/logo.png", false},
		{"/favicon.ico", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get("Content-Security-Policy")
			if tt.wantCSP {
				assert.Equal(t, cspPolicy, got)
				assert.Contains(t, got, paymentDomain)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestCSPAllowsSinglePaymentDomain(t *testing.T) {
	assert.Contains(t, cspPolicy, "default-src 'self'")
	assert.Contains(t, cspPolicy, "frame-src "+paymentDomain)
	assert.NotContains(t, cspPolicy, "unsafe-eval")
}
