package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pdf-replace-engine/internal/domain"
	apperrors "pdf-replace-engine/pkg/errors"
)

type contextKey string

const (
	userContextKey  contextKey = "user"
	tokenContextKey contextKey = "token"
)

// GetUserFromContext extracts the authenticated user from request context
func GetUserFromContext(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*domain.User)
	return user, ok
}

// GetTokenFromContext extracts the authentication token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	return token, ok
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeDomainError maps a service error to its HTTP representation.
func writeDomainError(w http.ResponseWriter, err error) {
	appErr := toAppError(err)
	writeError(w, appErr.StatusCode, appErr.Message)
}

// toAppError translates domain sentinel errors into typed application
// errors carrying an HTTP status. Unknown errors become 500s with a
// generic message so internals never leak to clients.
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return apperrors.NewConflictError("Username already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.NewUnauthorizedError("Incorrect username or password")
	case errors.Is(err, domain.ErrInvalidToken):
		return apperrors.NewUnauthorizedError("Invalid token")
	case errors.Is(err, domain.ErrDocumentNotFound):
		return apperrors.NewNotFoundError("Document not found")
	default:
		return apperrors.NewInternalError("Internal server error", err)
	}
}
