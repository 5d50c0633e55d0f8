package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cedora-living/showroom/internal/composing"
	"github.com/cedora-living/showroom/internal/geometry"
	"github.com/cedora-living/showroom/internal/imaging"
	"github.com/cedora-living/showroom/internal/staging"
)

// maxUploadBytes limits uploaded room photos to 10MB.
const maxUploadBytes = 10 * 1024 * 1024

func (h *Handler) HandlePreviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		sessions := h.previews.GetAll()
		views := make([]staging.View, 0, len(sessions))
		for _, session := range sessions {
			views = append(views, session.Snapshot())
		}
		h.writeJSON(w, views)
	case "POST":
		h.handleCreatePreview(w, r)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleCreatePreview(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Handle string `json:"handle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	product, ok := h.catalog.ByHandle(request.Handle)
	if !ok {
		h.writeError(w, "Product not found: "+request.Handle, http.StatusNotFound)
		return
	}

	session := staging.NewSession(product, h.composer)
	h.previews.Set(session.ID, session)

	slog.Info("Preview session created", "session_id", session.ID, "product", product.Handle)
	h.writeJSON(w, session.Snapshot())
}

// HandlePreviewDetail routes /api/previews/{id} and /api/previews/{id}/{action}.
func (h *Handler) HandlePreviewDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/previews/")
	sessionID, action, _ := strings.Cut(rest, "/")

	session, ok := h.getPreviewOrError(w, sessionID)
	if !ok {
		return
	}

	if action == "" {
		switch r.Method {
		case "GET":
			h.writeJSON(w, session.Snapshot())
		case "DELETE":
			h.previews.Delete(sessionID)
			slog.Info("Preview session closed", "session_id", sessionID)
			w.WriteHeader(http.StatusNoContent)
		default:
			h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch action {
	case "result":
		h.handleResultDownload(w, r, session)
		return
	case "share":
		h.handleShare(w, r, session)
		return
	}

	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch action {
	case "room":
		h.handleSelectRoom(w, r, session)
	case "back":
		h.respondAfter(w, session, session.Back())
	case "marker":
		h.handlePlaceMarker(w, r, session)
	case "process":
		h.handleProcess(w, r, session)
	case "retry":
		h.respondAfter(w, session, session.RetryPosition())
	case "focus":
		h.respondAfter(w, session, session.ToggleFocus())
	case "pan":
		h.handlePan(w, r, session)
	case "viewport":
		h.handleViewportBounds(w, r, session)
	default:
		h.writeError(w, "Unknown preview action: "+action, http.StatusNotFound)
	}
}

// handleSelectRoom accepts either a JSON body naming a template URL or a
// multipart upload of the shopper's own room photo.
func (h *Handler) handleSelectRoom(w http.ResponseWriter, r *http.Request, session *staging.Session) {
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var request struct {
			TemplateURL string `json:"templateUrl"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if request.TemplateURL == "" {
			h.writeError(w, "templateUrl is required", http.StatusBadRequest)
			return
		}
		h.respondAfter(w, session, session.SelectTemplate(request.TemplateURL))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		// Upload read failed: the session is left untouched in its current
		// stage and the shopper is prompted to retry.
		h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Read one byte past the limit so an exactly-10MB photo is still accepted.
	fileData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(fileData) > maxUploadBytes {
		h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
		return
	}

	mimeType := http.DetectContentType(fileData)
	if !strings.HasPrefix(mimeType, "image/") {
		h.writeError(w, "Uploaded file is not an image", http.StatusBadRequest)
		return
	}

	h.respondAfter(w, session, session.SelectUpload(imaging.DataURI(mimeType, fileData)))
}

func (h *Handler) handlePlaceMarker(w http.ResponseWriter, r *http.Request, session *staging.Session) {
	var request struct {
		ClientX float64       `json:"clientX"`
		ClientY float64       `json:"clientY"`
		Rect    geometry.Rect `json:"rect"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	marker, err := geometry.Normalize(request.ClientX, request.ClientY, request.Rect)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respondAfter(w, session, session.PlaceMarker(marker))
}

// handleProcess runs the composition synchronously; the busy flag rejects a
// second attempt while one is in flight.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request, session *staging.Session) {
	err := session.Process(r.Context())
	if err == nil {
		h.writeJSON(w, session.Snapshot())
		return
	}

	switch {
	case errors.Is(err, staging.ErrBusy):
		h.writeError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, staging.ErrNotReady), errors.Is(err, staging.ErrWrongStage):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, staging.ErrClosed):
		h.writeError(w, err.Error(), http.StatusGone)
	default:
		// ImageLoad, NoImageInResponse, and Composition failures collapse to
		// one user-facing message.
		slog.Error("AI staging failed", "session_id", session.ID, "err", err)
		h.writeError(w, userFacingFailure, http.StatusBadGateway)
	}
}

func (h *Handler) handlePan(w http.ResponseWriter, r *http.Request, session *staging.Session) {
	var request struct {
		Phase   string  `json:"phase"` // "start", "move", or "end"
		ClientX float64 `json:"clientX"`
		ClientY float64 `json:"clientY"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	switch request.Phase {
	case "start":
		err = session.DragStart(request.ClientX, request.ClientY)
	case "move":
		err = session.DragMove(request.ClientX, request.ClientY)
	case "end":
		err = session.DragEnd()
	default:
		h.writeError(w, "Invalid pan phase: "+request.Phase, http.StatusBadRequest)
		return
	}

	h.respondAfter(w, session, err)
}

func (h *Handler) handleViewportBounds(w http.ResponseWriter, r *http.Request, session *staging.Session) {
	var request struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.respondAfter(w, session, session.SetViewportBounds(request.Width, request.Height))
}

// respondAfter maps a state-machine error to a status code, or writes the
// updated session snapshot on success.
func (h *Handler) respondAfter(w http.ResponseWriter, session *staging.Session, err error) {
	switch {
	case err == nil:
		h.writeJSON(w, session.Snapshot())
	case errors.Is(err, staging.ErrBusy):
		h.writeError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, staging.ErrClosed):
		h.writeError(w, err.Error(), http.StatusGone)
	case errors.Is(err, staging.ErrWrongStage), errors.Is(err, staging.ErrNotReady):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, composing.ErrComposition), errors.Is(err, composing.ErrNoImageInResponse):
		h.writeError(w, userFacingFailure, http.StatusBadGateway)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}
