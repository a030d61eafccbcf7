package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// paymentDomain is the only third-party origin allowed by the content
// security policy; the PayPal approval flow loads scripts and frames from it.
const paymentDomain = "https://www.paypal.com"

var cspPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' " + paymentDomain,
	"style-src 'self' 'unsafe-inline' " + paymentDomain,
	"img-src 'self' data: " + paymentDomain,
	"frame-src " + paymentDomain,
	"connect-src 'self' " + paymentDomain,
}, "; ")

var cspExcludedPrefixes = []string{"/api/", "/api", "/static/", "/images/", "/favicon"}

// SecurityHeadersMiddleware applies the fixed CSP to every page response.
// API, static, image and favicon paths are excluded.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		excluded := false
		for _, prefix := range cspExcludedPrefixes {
			if strings.HasPrefix(path, prefix) {
				excluded = true
				break
			}
		}

		if !excluded {
			c.Writer.Header().Set("Content-Security-Policy", cspPolicy)
		}
		c.Next()
	}
}
