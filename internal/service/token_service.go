package service

import (
	"fmt"
	"time"

	"pdf-replace-engine/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService issues and verifies HMAC-signed bearer tokens. Tokens
// carry only a subject and an expiry; they prove identity, not
// authorization, so Verify re-checks the subject against the credential
// store.
type JWTTokenService struct {
	secret []byte
	users  domain.CredentialStore
	logger domain.Logger
}

// NewJWTTokenService creates a token service signing with secret.
func NewJWTTokenService(secret string, users domain.CredentialStore, logger domain.Logger) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		users:  users,
		logger: logger,
	}
}

// Issue signs a token for subject that expires after ttl.
func (s *JWTTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// subject. The subject must still resolve to a registered user.
func (s *JWTTokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	if !s.users.Exists(claims.Subject) {
		s.logger.Warn("Token subject no longer registered", "subject", claims.Subject)
		return "", domain.ErrInvalidToken
	}

	return claims.Subject, nil
}
