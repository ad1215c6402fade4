package handler

import (
	"encoding/json"
	"net/http"

	"folio/internal/content"

	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	Resolver *content.Resolver
	Store    *content.Store
}

// Get serves page copy through the fallback chain; it always produces a
// value, so the public pages never see an error for missing content.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	pageType := chi.URLParam(r, "pageType")
	raw := h.Resolver.Resolve(r.Context(), pageType)
	writeJSON(w, http.StatusOK, map[string]any{"content": raw})
}

type putContentReq struct {
	Content json.RawMessage `json:"content"`
}

// Put upserts the stored blob for a page type.
func (h *ContentHandler) Put(w http.ResponseWriter, r *http.Request) {
	pageType := chi.URLParam(r, "pageType")

	var req putContentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if len(req.Content) == 0 || !json.Valid(req.Content) {
		fail(w, http.StatusBadRequest, "content must be a JSON document")
		return
	}

	if err := h.Store.Set(r.Context(), pageType, req.Content); err != nil {
		serverError(w, "content", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
