package store

import (
	"os"
	"path/filepath"
	"testing"

	"pdf-replace-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentStore(t *testing.T) *FileDocumentStore {
	t.Helper()
	s, err := NewFileDocumentStore(t.TempDir(), &noopLogger{})
	require.NoError(t, err)
	return s
}

func TestDocumentStore_PutGetRoundTrip(t *testing.T) {
	s := newTestDocumentStore(t)

	content := []byte("%PDF-1.4 round trip")
	id, err := s.Put(content)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDocumentStore_UniqueIDs(t *testing.T) {
	s := newTestDocumentStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := s.Put([]byte("x"))
		require.NoError(t, err)
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
}

func TestDocumentStore_GetUnknownID(t *testing.T) {
	s := newTestDocumentStore(t)

	_, err := s.Get("6f1c1bcd-68f5-4e41-b6d3-111111111111")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestDocumentStore_RejectsNonUUIDID(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileDocumentStore(dir, &noopLogger{})
	require.NoError(t, err)

	// Plant a file outside the uuid namespace; a traversal id must not reach it.
	secret := filepath.Join(dir, "..", "secret.pdf")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	_, err = s.Get("../secret")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.False(t, s.Exists("../secret"))
}

func TestDocumentStore_Exists(t *testing.T) {
	s := newTestDocumentStore(t)

	id, err := s.Put([]byte("data"))
	require.NoError(t, err)

	assert.True(t, s.Exists(id))
	assert.False(t, s.Exists("6f1c1bcd-68f5-4e41-b6d3-222222222222"))
}

func TestDocumentStore_Probe(t *testing.T) {
	s := newTestDocumentStore(t)
	assert.NoError(t, s.Probe())
}

func TestDocumentStore_ProbeFailsOnMissingDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileDocumentStore(dir, &noopLogger{})
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, s.Probe())
}
