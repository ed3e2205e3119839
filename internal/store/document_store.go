package store

import (
	"fmt"
	"os"
	"path/filepath"

	"pdf-replace-engine/internal/domain"

	"github.com/google/uuid"
)

const readyProbeName = ".ready_test"

// FileDocumentStore keeps each uploaded document as a single file named
// by a random id. The id is the only path component derived from the
// request, so client-supplied filenames never touch the filesystem.
type FileDocumentStore struct {
	dir    string
	logger domain.Logger
}

// NewFileDocumentStore creates a document store rooted at dir. The
// directory is created if it does not exist.
func NewFileDocumentStore(dir string, logger domain.Logger) (*FileDocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileDocumentStore{dir: dir, logger: logger}, nil
}

// Put writes data under a freshly generated id and returns the id.
func (s *FileDocumentStore) Put(data []byte) (string, error) {
	id := uuid.NewString()

	if err := os.WriteFile(s.documentPath(id), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	s.logger.Debug("Document stored", "document_id", id, "size", len(data))
	return id, nil
}

// Get returns the stored bytes for id.
func (s *FileDocumentStore) Get(id string) ([]byte, error) {
	if !validDocumentID(id) {
		return nil, domain.ErrDocumentNotFound
	}

	data, err := os.ReadFile(s.documentPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// Exists reports whether a document is stored under id.
func (s *FileDocumentStore) Exists(id string) bool {
	if !validDocumentID(id) {
		return false
	}
	_, err := os.Stat(s.documentPath(id))
	return err == nil
}

// Probe verifies the storage directory is writable by creating and
// removing a scratch file. Used by the readiness endpoint.
func (s *FileDocumentStore) Probe() error {
	probe := filepath.Join(s.dir, readyProbeName)
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("storage directory not writable: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("failed to clean up probe file: %w", err)
	}
	return nil
}

func (s *FileDocumentStore) documentPath(id string) string {
	return filepath.Join(s.dir, id+".pdf")
}

// validDocumentID rejects anything that is not a UUID, which also rules
// out path traversal through the id.
func validDocumentID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
