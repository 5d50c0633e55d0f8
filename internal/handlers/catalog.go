package handlers

import (
	"net/http"
	"strings"

	"github.com/cedora-living/showroom/internal/catalog"
	"github.com/cedora-living/showroom/internal/rooms"
)

func (h *Handler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := catalog.Query{
		Collection: r.URL.Query().Get("collection"),
		Search:     r.URL.Query().Get("q"),
		Sort:       catalog.SortOrder(r.URL.Query().Get("sort")),
	}
	if q.Sort == "" {
		q.Sort = catalog.SortFeatured
	}

	h.writeJSON(w, h.catalog.Products(q))
}

func (h *Handler) HandleProductDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	handle := strings.TrimPrefix(r.URL.Path, "/api/products/")
	product, ok := h.catalog.ByHandle(handle)
	if !ok {
		h.writeError(w, "Product not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, product)
}

func (h *Handler) HandleCollections(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, h.catalog.Collections())
}

// HandleRoomTemplates serves the stock room photos for a room category,
// falling back to the general set for unrecognized categories.
func (h *Handler) HandleRoomTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	room := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/rooms/"), "/templates")
	h.writeJSON(w, map[string]any{
		"room":      room,
		"templates": rooms.TemplatesFor(room),
	})
}
