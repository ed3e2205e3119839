package handler

import (
	"net/http"

	"pdf-replace-engine/internal/domain"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	documents domain.DocumentStore
	logger    domain.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(documents domain.DocumentStore, logger domain.Logger) *HealthHandler {
	return &HealthHandler{
		documents: documents,
		logger:    logger,
	}
}

// Health reports process liveness.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness by probing that the storage directory is
// writable. Probe failures surface the underlying error text for
// operational polling.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.documents.Probe(); err != nil {
		h.logger.Error("Readiness probe failed", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
