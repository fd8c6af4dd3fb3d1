package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
)

const identityKey = "identity"

// RequireAuth verifies the bearer token on every request and stores the
// resolved identity in the request context. Requests without a valid
// token never reach a handler.
func RequireAuth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		id, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireJSON rejects request bodies that do not declare JSON. Bodyless
// methods pass through untouched.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.ContentLength == 0 {
			c.Next()
			return
		}
		ct := c.ContentType()
		if ct != "application/json" {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "expected application/json"})
			return
		}
		c.Next()
	}
}

// callerIdentity returns the identity stored by RequireAuth.
func callerIdentity(c *gin.Context) identity.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(identity.Identity); ok {
			return id
		}
	}
	return identity.Identity{}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
