package utils

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

// Client identifiers are opaque 24-character hexadecimal tokens.
var clientIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidClientID reports whether id has the shape the store requires:
// exactly 24 hexadecimal characters, case-insensitive.
func IsValidClientID(id string) bool {
	return clientIDPattern.MatchString(id)
}

// NewClientID generates a fresh client identifier: 12 random bytes
// hex-encoded, so it always satisfies IsValidClientID.
func NewClientID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic("utils: failed to read random bytes: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// ResourceURL builds an absolute URL for a resource path based on the
// incoming request's scheme and host.
func ResourceURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	base := scheme + "://" + c.Request.Host
	if strings.HasPrefix(path, "/") {
		return base + path
	}
	return base + "/" + path
}
