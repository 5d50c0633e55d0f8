package handlers

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cedora-living/showroom/internal/imaging"
	"github.com/cedora-living/showroom/internal/staging"
)

// handleResultDownload serves the composite as a PNG attachment. The
// filename carries the product slug and a millisecond timestamp so repeated
// saves of the same product never collide.
func (h *Handler) handleResultDownload(w http.ResponseWriter, r *http.Request, session *staging.Session) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, ok := h.resultBytes(w, session)
	if !ok {
		return
	}

	filename := fmt.Sprintf("cedora-preview-%s-%d.png", session.Product.Handle, time.Now().UnixMilli())
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(data); err != nil {
		slog.Error("Unable to write result image", "session_id", session.ID, "err", err)
	}
}

// handleShare builds the native-share payload for the result image. Share
// assembly never surfaces an error: any failure silently degrades to the
// plain download response.
func (h *Handler) handleShare(w http.ResponseWriter, r *http.Request, session *staging.Session) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, ok := h.resultBytes(w, session)
	if !ok {
		return
	}

	payload, err := buildSharePayload(session, data)
	if err != nil {
		slog.Warn("Share payload unavailable, degrading to download", "session_id", session.ID, "err", err)
		filename := fmt.Sprintf("cedora-preview-%s-%d.png", session.Product.Handle, time.Now().UnixMilli())
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if _, err := w.Write(data); err != nil {
			slog.Error("Unable to write fallback image", "session_id", session.ID, "err", err)
		}
		return
	}

	h.writeJSON(w, payload)
}

func (h *Handler) resultBytes(w http.ResponseWriter, session *staging.Session) ([]byte, bool) {
	resultImage, exists := session.ResultImage()
	if !exists {
		h.writeError(w, "No result image for this session", http.StatusNotFound)
		return nil, false
	}

	data, err := imaging.BytesFromDataURI(resultImage)
	if err != nil {
		h.writeError(w, "Result image is corrupt: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	return data, true
}

type sharePayload struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64 PNG bytes
}

func buildSharePayload(session *staging.Session, data []byte) (*sharePayload, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty result image")
	}
	name := session.Product.Name
	return &sharePayload{
		Title:    "My Cedora Interior: " + name,
		Text:     fmt.Sprintf("Check out how this %s looks in my space!", name),
		Filename: "cedora-preview.png",
		MimeType: "image/png",
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}
