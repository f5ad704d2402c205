// Package middleware provides the request gates applied before handlers run.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/port-russell/marina-api/logging/logger"
	"github.com/port-russell/marina-api/net/resp"
	securityjwt "github.com/port-russell/marina-api/security/jwt"
	"github.com/port-russell/marina-api/service"
)

// Context keys set by Auth for downstream handlers.
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// Auth gates protected routes behind a valid Bearer token. Requests without
// a decodable token are rejected before any handler runs.
func Auth(authService *service.AuthService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			resp.Fail(c.Writer, resp.UnAuthorized("Token manquant"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			resp.Fail(c.Writer, resp.UnAuthorized("Format de token invalide"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Warnf(c.Request.Context(), "token verification failed: %v", err)
			resp.Fail(c.Writer, resp.UnAuthorized("Token invalide ou expiré"))
			c.Abort()
			return
		}

		c.Set(UserIDKey, securityjwt.GetPayloadString(claims, "user_id"))
		c.Set(UserEmailKey, securityjwt.GetPayloadString(claims, "email"))

		c.Next()
	}
}

// CurrentUserEmail retrieves the authenticated user's email from context.
func CurrentUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
