// Package service implements the authentication use-cases on top of the
// credential store and token service.
package service

import (
	"errors"
	"fmt"
	"time"

	"pdf-replace-engine/internal/domain"
)

type authService struct {
	users    domain.CredentialStore
	tokens   domain.TokenService
	tokenTTL time.Duration
	logger   domain.Logger
}

// NewAuthService creates the authentication service.
func NewAuthService(
	users domain.CredentialStore,
	tokens domain.TokenService,
	tokenTTL time.Duration,
	logger domain.Logger,
) domain.AuthService {
	return &authService{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register creates a new account.
func (s *authService) Register(username, password string) (*domain.User, error) {
	user, err := s.users.Register(username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token for the user.
func (s *authService) Login(username, password string) (string, error) {
	user, err := s.users.Verify(username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", err
		}
		return "", fmt.Errorf("login failed: %w", err)
	}

	token, err := s.tokens.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", "username", user.Username)
	return token, nil
}

// ValidateToken resolves a bearer token to the user it identifies.
func (s *authService) ValidateToken(token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &domain.User{Username: subject}, nil
}
