package delivery

import (
	"net/http"

	"stayhub-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the cookie carrying the session token. Set and
// cleared with identical attributes so logout removes it reliably.
const AuthCookieName = "authToken"

const identityKey = "identity"

// AuthMiddleware reads the session cookie, verifies it and attaches the
// decoded identity to the request context. Verification is fully
// stateless and repeated on every request; there is no server-side
// session store.
func AuthMiddleware(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(AuthCookieName)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		claims, err := codec.Verify(cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// IdentityFromContext returns the identity attached by AuthMiddleware.
// Only valid on requests that passed through it.
func IdentityFromContext(c *gin.Context) (*token.Claims, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
