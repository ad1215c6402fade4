package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio/internal/prep"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type PrepHandler struct {
	Svc *prep.Service
}

func (h *PrepHandler) prepError(w http.ResponseWriter, entity string, err error) {
	switch {
	case errors.Is(err, prep.ErrNotFound):
		fail(w, http.StatusNotFound, "not found")
	case errors.Is(err, prep.ErrResourceOwner):
		fail(w, http.StatusBadRequest, "resource must have exactly one of pathId or topicId")
	default:
		serverError(w, entity, err)
	}
}

// Tree is the public knowledge-base read: every path with its topics,
// questions (deep-dive flag included), and resources.
func (h *PrepHandler) Tree(w http.ResponseWriter, r *http.Request) {
	paths, err := h.Svc.Tree(r.Context())
	if err != nil {
		serverError(w, "prep", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"paths": paths})
}

// --- paths ---

func (h *PrepHandler) ListPaths(w http.ResponseWriter, r *http.Request) {
	paths, err := h.Svc.ListPaths(r.Context())
	if err != nil {
		serverError(w, "prepPath", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"paths": paths})
}

func (h *PrepHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetPath(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.prepError(w, "prepPath", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type pathReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

func (r pathReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (h *PrepHandler) CreatePath(w http.ResponseWriter, r *http.Request) {
	var req pathReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Svc.CreatePath(r.Context(), prep.PathInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		serverError(w, "prepPath", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "path": p})
}

type updatePathReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

func (h *PrepHandler) UpdatePath(w http.ResponseWriter, r *http.Request) {
	var req updatePathReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}

	p, err := h.Svc.UpdatePath(r.Context(), chi.URLParam(r, "id"), prep.UpdatePathInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		h.prepError(w, "prepPath", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "path": p})
}

func (h *PrepHandler) DeletePath(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeletePath(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.prepError(w, "prepPath", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// --- topics ---

func (h *PrepHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Svc.ListTopics(r.Context(), r.URL.Query().Get("pathId"))
	if err != nil {
		serverError(w, "prepTopic", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"topics": topics})
}

func (h *PrepHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	t, err := h.Svc.GetTopic(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.prepError(w, "prepTopic", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

type topicReq struct {
	PathID      string `json:"pathId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (r topicReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PathID, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (h *PrepHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req topicReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.Svc.CreateTopic(r.Context(), prep.TopicInput{
		PathID:      req.PathID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		h.prepError(w, "prepTopic", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "topic": t})
}

type updateTopicReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func (h *PrepHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	var req updateTopicReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}

	t, err := h.Svc.UpdateTopic(r.Context(), chi.URLParam(r, "id"), prep.UpdateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		h.prepError(w, "prepTopic", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "topic": t})
}

func (h *PrepHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteTopic(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.prepError(w, "prepTopic", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// --- questions ---

func (h *PrepHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.Svc.ListQuestions(r.Context(), r.URL.Query().Get("topicId"))
	if err != nil {
		serverError(w, "prepQuestion", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (h *PrepHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.Svc.GetQuestion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.prepError(w, "prepQuestion", err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

type questionReq struct {
	TopicID    string   `json:"topicId"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	BlogSlug   string   `json:"blogSlug"`
	Order      int      `json:"order"`
}

func (r questionReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TopicID, validation.Required),
		validation.Field(&r.Question, validation.Required),
		validation.Field(&r.Difficulty, validation.Required, validation.In(anyList(prep.Difficulties)...)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (h *PrepHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.Svc.CreateQuestion(r.Context(), prep.QuestionInput{
		TopicID:    req.TopicID,
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Tags:       req.Tags,
		BlogSlug:   req.BlogSlug,
		Order:      req.Order,
	})
	if err != nil {
		h.prepError(w, "prepQuestion", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "question": q})
}

type updateQuestionReq struct {
	Question   *string   `json:"question"`
	Answer     *string   `json:"answer"`
	Difficulty *string   `json:"difficulty"`
	Tags       *[]string `json:"tags"`
	BlogSlug   *string   `json:"blogSlug"`
	Order      *int      `json:"order"`
}

func (r updateQuestionReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Question, validation.NilOrNotEmpty),
		validation.Field(&r.Difficulty, validation.In(anyList(prep.Difficulties)...)),
	)
}

func (h *PrepHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req updateQuestionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.Svc.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), prep.UpdateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Tags:       req.Tags,
		BlogSlug:   req.BlogSlug,
		Order:      req.Order,
	})
	if err != nil {
		h.prepError(w, "prepQuestion", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "question": q})
}

func (h *PrepHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteQuestion(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.prepError(w, "prepQuestion", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// --- resources ---

func (h *PrepHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.Svc.ListResources(r.Context(), r.URL.Query().Get("pathId"), r.URL.Query().Get("topicId"))
	if err != nil {
		serverError(w, "prepResource", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"resources": resources})
}

func (h *PrepHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.GetResource(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.prepError(w, "prepResource", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type resourceReq struct {
	PathID      *string `json:"pathId"`
	TopicID     *string `json:"topicId"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
}

func (r resourceReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.URL, validation.Required, is.URL),
		validation.Field(&r.Kind, validation.Required, validation.In(anyList(prep.ResourceKinds)...)),
	)
}

func (h *PrepHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req resourceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Svc.CreateResource(r.Context(), prep.ResourceInput{
		PathID:      req.PathID,
		TopicID:     req.TopicID,
		Title:       req.Title,
		URL:         req.URL,
		Kind:        req.Kind,
		Description: req.Description,
	})
	if err != nil {
		h.prepError(w, "prepResource", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "resource": res})
}

type updateResourceReq struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Kind        *string `json:"kind"`
	Description *string `json:"description"`
}

func (r updateResourceReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.URL, is.URL),
		validation.Field(&r.Kind, validation.In(anyList(prep.ResourceKinds)...)),
	)
}

func (h *PrepHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	var req updateResourceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Svc.UpdateResource(r.Context(), chi.URLParam(r, "id"), prep.UpdateResourceInput{
		Title:       req.Title,
		URL:         req.URL,
		Kind:        req.Kind,
		Description: req.Description,
	})
	if err != nil {
		h.prepError(w, "prepResource", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "resource": res})
}

func (h *PrepHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteResource(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.prepError(w, "prepResource", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
