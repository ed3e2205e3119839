package handler

import (
	"errors"
	"net/http"

	"pdf-replace-engine/internal/domain"
)

// AuthHandler handles registration and token issuance.
type AuthHandler struct {
	authService domain.AuthService
	logger      domain.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService domain.AuthService, logger domain.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new account from form-encoded credentials.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.authService.Register(username, password)
	if err != nil {
		if !errors.Is(err, domain.ErrUsernameTaken) {
			h.logger.Error("Registration failed", err, "username", username)
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "User " + user.Username + " registered",
	})
}

// Token verifies form-encoded credentials and returns a bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.authService.Login(username, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			h.logger.Error("Login failed", err, "username", username)
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
