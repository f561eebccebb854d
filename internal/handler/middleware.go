package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/service"
	"github.com/contactbook/backend/internal/token"
)

const (
	identityKey  = "auth_user"
	bearerPrefix = "Bearer "
)

// Authenticate is the per-request gate. Requests without a bearer token pass
// through unauthenticated; route-level RequireAuth decides whether that is
// fatal. Structurally broken tokens are rejected here with a distinguished
// message per failure.
func Authenticate(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(header, bearerPrefix)
		user, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				reject(c, "Token Expired")
			case errors.Is(err, token.ErrSignature):
				reject(c, "Invalid Token Signature")
			case errors.Is(err, token.ErrMalformed):
				reject(c, "Invalid Token Format")
			case errors.Is(err, token.ErrMissing):
				reject(c, "Token is Missing")
			default:
				log.Error().Err(err).Msg("token subject lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, model.WebResponse{
					Status: boolPtr(false),
					Errors: "internal server error",
				})
			}
			return
		}

		if user != nil {
			c.Set(identityKey, user)
		}
		c.Next()
	}
}

// RequireAuth guards protected routes: no identity attached means 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			reject(c, "Unauthorized")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity the gate attached, or nil.
func CurrentUser(c *gin.Context) *model.UserAccount {
	if value, ok := c.Get(identityKey); ok {
		if user, ok := value.(*model.UserAccount); ok {
			return user
		}
	}
	return nil
}

// RequestLogger emits one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
