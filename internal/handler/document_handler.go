// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-replace-engine/internal/domain"
	apperrors "pdf-replace-engine/pkg/errors"

	"github.com/gorilla/mux"
)

// DocumentHandler handles document upload, download and replacement requests.
type DocumentHandler struct {
	documents   domain.DocumentStore
	maxFileSize int64
	logger      domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents domain.DocumentStore, maxFileSize int64, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents:   documents,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload stores a multipart PDF upload and returns its new id.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	// Cap the body before multipart parsing so oversized uploads are
	// cut off while reading, not after being spooled to disk.
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeDomainError(w, apperrors.NewValidationError("File too large"))
			return
		}
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components). It is metadata
	// only and never used to build a storage path.
	originalName := strings.TrimSpace(filepath.Base(header.Filename))

	// Extension check only; content is not sniffed.
	if !strings.HasSuffix(strings.ToLower(originalName), ".pdf") {
		writeDomainError(w, apperrors.NewValidationError("Only PDF files are accepted"))
		return
	}

	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		writeDomainError(w, apperrors.NewValidationError("File too large"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "filename", originalName)
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	id, err := h.documents.Put(data)
	if err != nil {
		h.logger.Error("Failed to store document", err, "filename", originalName)
		writeError(w, http.StatusInternalServerError, "Failed to store document")
		return
	}

	h.logger.Info("Document uploaded", "document_id", id, "filename", originalName, "uploaded_by", user.Username)
	writeJSON(w, http.StatusOK, map[string]string{
		"document_id": id,
		"filename":    originalName,
		"uploaded_by": user.Username,
	})
}

// Replace accepts text-replacement mappings for a stored document. The
// replacement engine is not wired in yet, so the mappings are validated
// against the document and echoed back without touching the bytes.
func (h *DocumentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	vars := mux.Vars(r)
	documentID := vars["id"]

	if !h.documents.Exists(documentID) {
		writeDomainError(w, domain.ErrDocumentNotFound)
		return
	}

	var req domain.ReplacementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// An absent mappings field is a malformed request; an explicit
	// empty list is accepted and echoed back.
	if req.Mappings == nil {
		writeDomainError(w, apperrors.NewValidationError("mappings field is required"))
		return
	}

	h.logger.Info("Replacement accepted", "document_id", documentID, "mappings", len(req.Mappings), "applied_by", user.Username)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "accepted",
		"mappings":   req.Mappings,
		"applied_by": user.Username,
	})
}

// Download returns the stored bytes for a document id.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetUserFromContext(r); !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	vars := mux.Vars(r)
	documentID := vars["id"]

	data, err := h.documents.Get(documentID)
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			h.logger.Error("Failed to read document", err, "document_id", documentID)
		}
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+documentID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
