package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/planner"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newItemsRouter(t *testing.T) http.Handler {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "items.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&planner.Item{}))

	h := &ItemHandler{Svc: &planner.Service{DB: gdb}}

	r := chi.NewRouter()
	r.Get("/items", h.List)
	r.Post("/items", h.Create)
	r.Get("/items/{id}", h.Get)
	r.Put("/items/{id}", h.Update)
	r.Delete("/items/{id}", h.Delete)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestItemsCreateAndList(t *testing.T) {
	r := newItemsRouter(t)

	w := doJSON(t, r, http.MethodPost, "/items", `{"title":"Ship release","type":"todo","priority":"urgent","tags":["work"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Success bool         `json:"success"`
		Item    planner.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.Item.ID)
	assert.Equal(t, "active", created.Item.Status)

	w = doJSON(t, r, http.MethodGet, "/items?status=active", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Items []planner.Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Items, 1)
	assert.Equal(t, created.Item.ID, listed.Items[0].ID)
}

func TestItemsValidationRejectedBeforePersistence(t *testing.T) {
	r := newItemsRouter(t)

	w := doJSON(t, r, http.MethodPost, "/items", `{"title":"","type":"todo","priority":"urgent"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)

	// bad enum
	w = doJSON(t, r, http.MethodPost, "/items", `{"title":"x","type":"todo","priority":"extreme"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing was stored
	w = doJSON(t, r, http.MethodGet, "/items", "")
	var listed struct {
		Items []planner.Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed.Items)
}

func TestItemsUpdateAndNotFound(t *testing.T) {
	r := newItemsRouter(t)

	w := doJSON(t, r, http.MethodPost, "/items", `{"title":"Water plants","type":"reminder","priority":"low"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Item planner.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/items/"+created.Item.ID, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Item planner.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "completed", updated.Item.Status)
	assert.Equal(t, "Water plants", updated.Item.Title, "absent fields untouched")

	w = doJSON(t, r, http.MethodPut, "/items/missing-id", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/items/missing-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/items/"+created.Item.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
