package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/customerhub/internal/domain/model"
	pkgAuth "github.com/polkiloo/customerhub/internal/pkg/auth"
	"github.com/polkiloo/customerhub/internal/server/http/dto"
)

const (
	// ClaimsContextKey is a gin context key for claims of the authenticated caller.
	ClaimsContextKey = "claims"

	MessageNoToken      = "Access denied. No token provided."
	MessageInvalidToken = "Invalid token"
	messageInternal     = "Internal server error"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(token string) (model.Claims, error)
}

type claimsKey struct{}

// AuthRequired rejects requests without a verifiable bearer token.
// A missing header yields 401, anything unverifiable yields 403.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: MessageNoToken})
			return
		}

		token := extractToken(header)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{Message: MessageInvalidToken})
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{Message: MessageInvalidToken})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: messageInternal})
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), claimsKey{}, claims))
		c.Next()
	}
}

// extractToken returns the second whitespace separated field of "<scheme> <token>".
// The scheme itself is not checked.
func extractToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// ClaimsFromContext returns claims stored by AuthRequired in a request context.
func ClaimsFromContext(ctx context.Context) (model.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(model.Claims)
	return claims, ok
}
