package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"folio/internal/blog"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type BlogHandler struct {
	// Public reads come from the configured source (files or store);
	// admin reads and all writes go through the store.
	Public *blog.ReadModel
	Admin  *blog.ReadModel
	Svc    *blog.Service
}

func (h *BlogHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	var (
		posts []blog.Post
		err   error
	)
	switch {
	case r.URL.Query().Get("tag") != "":
		posts, err = h.Public.ByTag(r.Context(), r.URL.Query().Get("tag"))
	case r.URL.Query().Get("category") != "":
		posts, err = h.Public.ByCategory(r.Context(), r.URL.Query().Get("category"))
	default:
		posts, err = h.Public.Published(r.Context())
	}
	if err != nil {
		serverError(w, "blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *BlogHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := h.Public.BySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "blog", err)
		return
	}
	if !p.Published {
		fail(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *BlogHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Public.Tags(r.Context())
	if err != nil {
		serverError(w, "blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tags": tags})
}

func (h *BlogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Public.Categories(r.Context())
	if err != nil {
		serverError(w, "blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// ListAdmin returns every post regardless of the published flag.
func (h *BlogHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Admin.All(r.Context())
	if err != nil {
		serverError(w, "blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *BlogHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	p, err := h.Admin.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "blog", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type createPostReq struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Published   bool     `json:"published"`
	PublishedAt *string  `json:"publishedAt"`
	Image       string   `json:"image"`
	VideoURL    string   `json:"videoUrl"`
}

func (r createPostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required, validation.Match(slugRe)),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	publishedAt, err := parseTimePtr(req.PublishedAt)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid publishedAt")
		return
	}

	p, err := h.Svc.Create(r.Context(), blog.CreatePostInput{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
		Category:    req.Category,
		Published:   req.Published,
		PublishedAt: publishedAt,
		Image:       req.Image,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		if errors.Is(err, blog.ErrConflict) {
			fail(w, http.StatusConflict, "slug already exists")
			return
		}
		serverError(w, "blog", err)
		return
	}
	p.ReadingTime = blog.ReadingTime(p.Content)

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "post": p})
}

type updatePostReq struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
	Category    *string   `json:"category"`
	Published   *bool     `json:"published"`
	PublishedAt *string   `json:"publishedAt"`
	Image       *string   `json:"image"`
	VideoURL    *string   `json:"videoUrl"`
}

func (r updatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
	)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req updatePostReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	publishedAt, err := parseTimePtr(req.PublishedAt)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid publishedAt")
		return
	}

	p, err := h.Svc.Update(r.Context(), slug, blog.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
		Category:    req.Category,
		Published:   req.Published,
		PublishedAt: publishedAt,
		Image:       req.Image,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "blog", err)
		return
	}
	p.ReadingTime = blog.ReadingTime(p.Content)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "post": p})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.Delete(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
