package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"salon-booking-server/internal/auth"
	"salon-booking-server/internal/config"
	"salon-booking-server/internal/utils"
)

const claimsKey = "claims"

// AuthMiddleware authenticates each request from the auth cookie, falling
// back to an Authorization bearer header for non-browser clients. A missing
// or undecodable token is unauthorized; capability checks happen later and
// yield forbidden instead.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cfg.AuthCookieName)
		if token == "" {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := auth.DecodeToken(token, cfg.TokenSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// RequireAction gates a route group on a single policy action. It must run
// after AuthMiddleware.
func RequireAction(action auth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if !auth.Authorize(claims, action) {
			utils.Forbidden(c, "You do not have permission to access this resource.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the decoded claims set by AuthMiddleware.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
