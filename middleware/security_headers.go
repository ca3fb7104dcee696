package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ClientDesk/client-desk-backend/config"
)

// SecurityHeadersMiddleware adds security-related HTTP headers to all
// responses, protecting against clickjacking, MIME sniffing and related
// browser-side issues.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// HSTS only in production to avoid issues during local development
		if cfg.IsProduction() {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
