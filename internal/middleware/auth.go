package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/pkg/jwt"
	"github.com/jasri-space/core/internal/pkg/response"
)

const (
	// CookieName is the session cookie carrying the signed token.
	CookieName = "token"

	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// RequireAuth gates mutating routes: 401 when no token is presented, 403 when
// a token is presented but invalid or expired.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Forbidden(c, "Invalid token")
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// OptionalAuth sets identity keys if a valid token is present, but never
// blocks the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := ExtractToken(c); token != "" {
			if claims, err := jwt.Parse(token); err == nil {
				c.Set(ContextKeyUserID, claims.UserID)
				c.Set(ContextKeyUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// ExtractToken reads the session cookie, falling back to a bearer header for
// non-browser clients.
func ExtractToken(c *gin.Context) string {
	if v, err := c.Cookie(CookieName); err == nil && v != "" {
		return v
	}
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// CurrentUserID extracts the authenticated user ID from context. Empty for
// sessions issued against the env bootstrap credentials.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentUsername extracts the authenticated username from context.
func CurrentUsername(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUsername)
	name, _ := v.(string)
	return name
}

// IsAuthenticated returns true if the request carries a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUsername(c) != ""
}
