package domain

import "time"

// CredentialStore defines persistence and verification of user accounts.
type CredentialStore interface {
	Register(username, password string) (*User, error)
	Verify(username, password string) (*User, error)
	Exists(username string) bool
}

// DocumentStore defines content-addressed storage of uploaded documents.
type DocumentStore interface {
	Put(data []byte) (string, error)
	Get(id string) ([]byte, error)
	Exists(id string) bool
	Probe() error
}

// PasswordHasher defines one-way salted hashing of passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}

// AuthService defines the authentication use-cases exposed over HTTP.
type AuthService interface {
	Register(username, password string) (*User, error)
	Login(username, password string) (string, error)
	ValidateToken(token string) (*User, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetStoragePath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetJWTSecret() string
	GetTokenTTL() time.Duration
}
