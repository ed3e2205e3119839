package handler

import (
	"context"
	"net/http"
	"strings"

	"pdf-replace-engine/internal/domain"
)

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	authService domain.AuthService
	logger      domain.Logger
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(authService domain.AuthService, logger domain.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Middleware rejects the request with 401 before any handler runs
// unless a valid bearer token is presented. On success the resolved
// user and the raw token are bound to the request context.
func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>" format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token := parts[1]
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Token required")
			return
		}

		user, err := m.authService.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed", "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
