package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	mem "healthtrack/pkg/memcache"
	"healthtrack/pkg/utils"
)

const (
	userIDKey       = "user_id"
	roleKey         = "role"
	tokenIDKey      = "token_id"
	tokenExpiresKey = "token_expires"
)

// JWTAuthMiddleware resolves the caller from a bearer token and rejects the
// request when the token is missing, invalid, expired or revoked.
func JWTAuthMiddleware(tokens *utils.TokenManager, revoked mem.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if revoked.IsRevoked(claims.ID) {
			utils.RespondError(c, http.StatusUnauthorized, "Token has been revoked")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(roleKey, claims.Role)
		c.Set(tokenIDKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(tokenExpiresKey, claims.ExpiresAt.Time)
		}
		utils.SetLogger(c, utils.Logger(c).WithField("user_id", claims.UserID))
		c.Next()
	}
}

// RoleMiddleware lets the request through when the caller has one of roles.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(roleKey)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}

// MustUserID returns the authenticated user id. Only valid behind
// JWTAuthMiddleware.
func MustUserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}

// TokenInfo returns the id and expiry of the token used for this request.
func TokenInfo(c *gin.Context) (string, time.Time) {
	return c.GetString(tokenIDKey), c.GetTime(tokenExpiresKey)
}
