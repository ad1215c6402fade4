package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio/internal/planner"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type JournalHandler struct {
	Svc *planner.Service
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.Svc.ListJournal(r.Context(), planner.JournalFilter{
		From: from,
		To:   to,
		Mood: r.URL.Query().Get("mood"),
	})
	if err != nil {
		serverError(w, "journal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Svc.GetJournal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "journal", err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

type createJournalReq struct {
	Date     string   `json:"date"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Mood     string   `json:"mood"`
	Tags     []string `json:"tags"`
	Weather  string   `json:"weather"`
	Location string   `json:"location"`
}

func (r createJournalReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Mood, validation.In(anyList(planner.Moods)...)),
	)
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJournalReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseTime(req.Date)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid date")
		return
	}

	e, err := h.Svc.CreateJournal(r.Context(), planner.CreateJournalInput{
		Date:     date,
		Title:    req.Title,
		Content:  req.Content,
		Mood:     req.Mood,
		Tags:     req.Tags,
		Weather:  req.Weather,
		Location: req.Location,
	})
	if err != nil {
		serverError(w, "journal", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "entry": e})
}

type updateJournalReq struct {
	Date     *string   `json:"date"`
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Mood     *string   `json:"mood"`
	Tags     *[]string `json:"tags"`
	Weather  *string   `json:"weather"`
	Location *string   `json:"location"`
}

func (r updateJournalReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.Mood, validation.In(anyList(planner.Moods)...)),
	)
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateJournalReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseTimePtr(req.Date)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid date")
		return
	}

	e, err := h.Svc.UpdateJournal(r.Context(), chi.URLParam(r, "id"), planner.UpdateJournalInput{
		Date:     date,
		Title:    req.Title,
		Content:  req.Content,
		Mood:     req.Mood,
		Tags:     req.Tags,
		Weather:  req.Weather,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "journal", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "entry": e})
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.DeleteJournal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "journal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
