package service

import (
	"strings"
	"testing"
	"time"

	"pdf-replace-engine/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentialStore struct {
	users map[string]bool
}

func (f *fakeCredentialStore) Register(username, password string) (*domain.User, error) {
	f.users[username] = true
	return &domain.User{Username: username}, nil
}

func (f *fakeCredentialStore) Verify(username, password string) (*domain.User, error) {
	if !f.users[username] {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.User{Username: username}, nil
}

func (f *fakeCredentialStore) Exists(username string) bool {
	return f.users[username]
}

type testLogger struct{}

func (l *testLogger) Info(msg string, fields ...interface{})             {}
func (l *testLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *testLogger) Debug(msg string, fields ...interface{})            {}
func (l *testLogger) Warn(msg string, fields ...interface{})             {}

func newTestTokenService(users ...string) (*JWTTokenService, *fakeCredentialStore) {
	store := &fakeCredentialStore{users: make(map[string]bool)}
	for _, u := range users {
		store.users[u] = true
	}
	return NewJWTTokenService("test-secret", store, &testLogger{}), store
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, _ := newTestTokenService("alice")

	token, err := svc.Issue("alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc, _ := newTestTokenService("alice")

	token, err := svc.Issue("alice", time.Hour)
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	svc, store := newTestTokenService("alice")

	token, err := svc.Issue("alice", time.Hour)
	require.NoError(t, err)

	other := NewJWTTokenService("different-secret", store, &testLogger{})
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	svc, _ := newTestTokenService("alice")

	token, err := svc.Issue("alice", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_UnknownSubject(t *testing.T) {
	svc, store := newTestTokenService("alice")

	token, err := svc.Issue("alice", time.Hour)
	require.NoError(t, err)

	// Simulate the subject disappearing between issue and verify.
	delete(store.users, "alice")

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_MissingExpiry(t *testing.T) {
	svc, _ := newTestTokenService("alice")

	// A validly-signed token without an exp claim must still be rejected.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc, _ := newTestTokenService("alice")

	_, err := svc.Verify("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
