package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"folio/internal/blog"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBlogRouter(t *testing.T) http.Handler {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "blog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&blog.Post{}))

	dbSource := &blog.DBSource{DB: gdb}
	h := &BlogHandler{
		Public: &blog.ReadModel{Source: dbSource},
		Admin:  &blog.ReadModel{Source: dbSource},
		Svc:    &blog.Service{DB: gdb},
	}

	r := chi.NewRouter()
	r.Post("/posts", h.Create)
	r.Get("/posts/{slug}", h.GetAdmin)
	r.Put("/posts/{slug}", h.Update)
	return r
}

func TestBlogUpdateRejectsBlankFields(t *testing.T) {
	r := newBlogRouter(t)

	w := doJSON(t, r, http.MethodPost, "/posts", `{"slug":"go-notes","title":"Go Notes","content":"Some words."}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// title and content may be omitted but not blanked
	w = doJSON(t, r, http.MethodPut, "/posts/go-notes", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/posts/go-notes", `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/posts/go-notes", `{"description":"short"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/posts/go-notes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got blog.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Go Notes", got.Title, "rejected updates left the post intact")
	assert.Equal(t, "Some words.", got.Content)
	assert.Equal(t, "short", got.Description)
}
