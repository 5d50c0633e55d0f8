package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cedora-living/showroom/internal/catalog"
	"github.com/cedora-living/showroom/internal/composing"
	"github.com/cedora-living/showroom/internal/staging"
	"github.com/cedora-living/showroom/internal/storage"
)

// userFacingFailure is the single message shown for any composition
// failure; the session stays in marker placement so the shopper can retry.
const userFacingFailure = "Failed to process image. Try a different room template or upload your own photo."

type Handler struct {
	previews *storage.PreviewStore
	catalog  *catalog.Service
	composer composing.Composer
}

func New(catalogService *catalog.Service, composer composing.Composer) *Handler {
	return &Handler{
		previews: storage.New(),
		catalog:  catalogService,
		composer: composer,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getPreviewOrError(w http.ResponseWriter, sessionID string) (*staging.Session, bool) {
	session, exists := h.previews.Get(sessionID)
	if !exists {
		h.writeError(w, "Preview session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
