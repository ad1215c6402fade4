package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio/internal/planner"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ItemHandler struct {
	Svc *planner.Service
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListItems(r.Context(), planner.ItemFilter{
		Status:   r.URL.Query().Get("status"),
		Type:     r.URL.Query().Get("type"),
		Priority: r.URL.Query().Get("priority"),
	})
	if err != nil {
		serverError(w, "item", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.Svc.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "item", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

type createItemReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	DueDate     *string  `json:"dueDate"`
	Tags        []string `json:"tags"`
}

func (r createItemReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.In(anyList(planner.ItemTypes)...)),
		validation.Field(&r.Priority, validation.Required, validation.In(anyList(planner.Priorities)...)),
		validation.Field(&r.Status, validation.In(anyList(planner.Statuses)...)),
	)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	due, err := parseTimePtr(req.DueDate)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid dueDate")
		return
	}

	it, err := h.Svc.CreateItem(r.Context(), planner.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     due,
		Tags:        req.Tags,
	})
	if err != nil {
		serverError(w, "item", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "item": it})
}

type updateItemReq struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Type        *string   `json:"type"`
	Priority    *string   `json:"priority"`
	Status      *string   `json:"status"`
	DueDate     *string   `json:"dueDate"`
	Tags        *[]string `json:"tags"`
}

func (r updateItemReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Type, validation.In(anyList(planner.ItemTypes)...)),
		validation.Field(&r.Priority, validation.In(anyList(planner.Priorities)...)),
		validation.Field(&r.Status, validation.In(anyList(planner.Statuses)...)),
	)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	due, err := parseTimePtr(req.DueDate)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid dueDate")
		return
	}

	it, err := h.Svc.UpdateItem(r.Context(), chi.URLParam(r, "id"), planner.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     due,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "item", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": it})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.DeleteItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "item", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
