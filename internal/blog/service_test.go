package blog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "blog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&Post{}))

	return &Service{DB: gdb}
}

func TestCreatePostRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	publishedAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, CreatePostInput{
		Slug:        "hello-world",
		Title:       "Hello World",
		Content:     "My first post.",
		Tags:        []string{"meta"},
		Category:    "general",
		Published:   true,
		PublishedAt: &publishedAt,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := (&DBSource{DB: svc.DB}).BySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Tags, got.Tags)
	assert.True(t, created.PublishedAt.Equal(got.PublishedAt))
}

func TestCreatePostSlugConflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePostInput{Slug: "dup", Title: "One", Content: "a"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreatePostInput{Slug: "dup", Title: "Two", Content: "b"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdatePostPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePostInput{
		Slug:     "partial",
		Title:    "Original title",
		Content:  "Original content",
		Tags:     []string{"one", "two"},
		Category: "tech",
	})
	require.NoError(t, err)

	published := true
	updated, err := svc.Update(ctx, "partial", UpdatePostInput{Published: &published})
	require.NoError(t, err)

	assert.True(t, updated.Published)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.Tags, updated.Tags)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, "partial", updated.Slug, "slug is immutable")
}

func TestDraftPublishedAtStampedOnPublish(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePostInput{
		Slug:    "draft",
		Title:   "Draft",
		Content: "Not ready yet.",
	})
	require.NoError(t, err)
	assert.True(t, created.PublishedAt.IsZero(), "drafts carry no publish date")

	published := true
	updated, err := svc.Update(ctx, "draft", UpdatePostInput{Published: &published})
	require.NoError(t, err)
	assert.False(t, updated.PublishedAt.IsZero(), "publishing stamps the date")
	assert.WithinDuration(t, time.Now(), updated.PublishedAt, time.Minute)

	// later edits keep the original publish date
	title := "Draft, revised"
	revised, err := svc.Update(ctx, "draft", UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.True(t, updated.PublishedAt.Equal(revised.PublishedAt))
}

func TestUpdatePostMissing(t *testing.T) {
	svc := newTestService(t)

	title := "x"
	_, err := svc.Update(context.Background(), "ghost", UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePost(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePostInput{Slug: "gone", Title: "T", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "gone"))
	assert.ErrorIs(t, svc.Delete(ctx, "gone"), ErrNotFound)

	_, err = (&DBSource{DB: svc.DB}).BySlug(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDBSourceOrdering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i, slug := range []string{"first", "second", "third"} {
		at := time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC)
		_, err := svc.Create(ctx, CreatePostInput{Slug: slug, Title: slug, Content: "c", PublishedAt: &at})
		require.NoError(t, err)
	}

	posts, err := (&DBSource{DB: svc.DB}).All(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Slug)
	assert.Equal(t, "first", posts[2].Slug)
}
