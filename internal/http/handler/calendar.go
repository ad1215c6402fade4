package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio/internal/planner"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CalendarHandler struct {
	Svc *planner.Service
}

func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimePtr(queryPtr(r, "startDate"))
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	to, err := parseTimePtr(queryPtr(r, "endDate"))
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	events, err := h.Svc.ListEvents(r.Context(), planner.EventFilter{
		From:      from,
		To:        to,
		EventType: r.URL.Query().Get("eventType"),
	})
	if err != nil {
		serverError(w, "event", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Svc.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "event", err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

type createEventReq struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	StartDate        string  `json:"startDate"`
	EndDate          *string `json:"endDate"`
	AllDay           bool    `json:"allDay"`
	EventType        string  `json:"eventType"`
	Color            string  `json:"color"`
	Location         string  `json:"location"`
	RecurringPattern string  `json:"recurringPattern"`
	RecurringUntil   *string `json:"recurringUntil"`
}

func (r createEventReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.EventType, validation.Required, validation.In(anyList(planner.EventTypes)...)),
	)
}

func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	start, err := parseTime(req.StartDate)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseTimePtr(req.EndDate)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid endDate")
		return
	}
	until, err := parseTimePtr(req.RecurringUntil)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid recurringUntil")
		return
	}

	e, err := h.Svc.CreateEvent(r.Context(), planner.CreateEventInput{
		Title:            req.Title,
		Description:      req.Description,
		StartDate:        start,
		EndDate:          end,
		AllDay:           req.AllDay,
		EventType:        req.EventType,
		Color:            req.Color,
		Location:         req.Location,
		RecurringPattern: req.RecurringPattern,
		RecurringUntil:   until,
	})
	if err != nil {
		serverError(w, "event", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "event": e})
}

type updateEventReq struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	AllDay           *bool   `json:"allDay"`
	EventType        *string `json:"eventType"`
	Color            *string `json:"color"`
	Location         *string `json:"location"`
	RecurringPattern *string `json:"recurringPattern"`
	RecurringUntil   *string `json:"recurringUntil"`
}

func (r updateEventReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.EventType, validation.In(anyList(planner.EventTypes)...)),
	)
}

func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateEventReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	start, err := parseTimePtr(req.StartDate)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseTimePtr(req.EndDate)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid endDate")
		return
	}
	until, err := parseTimePtr(req.RecurringUntil)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid recurringUntil")
		return
	}

	e, err := h.Svc.UpdateEvent(r.Context(), chi.URLParam(r, "id"), planner.UpdateEventInput{
		Title:            req.Title,
		Description:      req.Description,
		StartDate:        start,
		EndDate:          end,
		AllDay:           req.AllDay,
		EventType:        req.EventType,
		Color:            req.Color,
		Location:         req.Location,
		RecurringPattern: req.RecurringPattern,
		RecurringUntil:   until,
	})
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "event", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "event": e})
}

func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.DeleteEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "event", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
