package blog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 0},
		{"one word", 1, 1},
		{"exactly one minute", WordsPerMinute, 1},
		{"just over one minute", WordsPerMinute + 1, 2},
		{"five minutes", WordsPerMinute * 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			assert.Equal(t, tt.want, ReadingTime(content))
		})
	}
}

func TestReadingTimeDeterministic(t *testing.T) {
	content := strings.Repeat("some sentence about Go concurrency patterns. ", 100)
	first := ReadingTime(content)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ReadingTime(content))
	}
}

// staticSource serves a fixed slice, standing in for either backend.
type staticSource struct {
	posts []Post
}

func (s *staticSource) All(ctx context.Context) ([]Post, error) { return append([]Post{}, s.posts...), nil }

func (s *staticSource) BySlug(ctx context.Context, slug string) (*Post, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			q := p
			return &q, nil
		}
	}
	return nil, ErrNotFound
}

func day(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

func testPosts() []Post {
	return []Post{
		{Slug: "old", Title: "Old", Content: "a b c", Published: true, PublishedAt: day(1), Tags: []string{"go"}, Category: "tech"},
		{Slug: "draft", Title: "Draft", Content: "x", Published: false, PublishedAt: day(5), Tags: []string{"go", "drafts"}, Category: "tech"},
		{Slug: "new", Title: "New", Content: "d e f", Published: true, PublishedAt: day(9), Tags: []string{"life"}, Category: "personal"},
		{Slug: "mid", Title: "Mid", Content: "g", Published: true, PublishedAt: day(4), Tags: []string{}, Category: ""},
	}
}

func TestReadModelAllSortsNewestFirst(t *testing.T) {
	m := &ReadModel{Source: &staticSource{posts: testPosts()}}

	posts, err := m.All(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 4, "admin listing includes drafts")
	assert.Equal(t, "new", posts[0].Slug)
	assert.Equal(t, "old", posts[3].Slug)

	for _, p := range posts {
		assert.Equal(t, ReadingTime(p.Content), p.ReadingTime)
	}
}

func TestReadModelPublishedFiltersDrafts(t *testing.T) {
	m := &ReadModel{Source: &staticSource{posts: testPosts()}}

	posts, err := m.Published(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.True(t, p.Published)
	}
}

func TestReadModelByTagAndCategory(t *testing.T) {
	m := &ReadModel{Source: &staticSource{posts: testPosts()}}
	ctx := context.Background()

	byTag, err := m.ByTag(ctx, "go")
	require.NoError(t, err)
	require.Len(t, byTag, 1, "draft with the go tag is excluded")
	assert.Equal(t, "old", byTag[0].Slug)

	byCat, err := m.ByCategory(ctx, "personal")
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "new", byCat[0].Slug)
}

func TestReadModelTagsAndCategories(t *testing.T) {
	m := &ReadModel{Source: &staticSource{posts: testPosts()}}
	ctx := context.Background()

	tags, err := m.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "life"}, tags, "draft-only tags excluded, result sorted")

	categories, err := m.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"personal", "tech"}, categories, "empty category omitted")
}

func TestReadModelStableSortOnEqualDates(t *testing.T) {
	posts := []Post{
		{Slug: "first", Published: true, PublishedAt: day(1)},
		{Slug: "second", Published: true, PublishedAt: day(1)},
		{Slug: "third", Published: true, PublishedAt: day(1)},
	}
	m := &ReadModel{Source: &staticSource{posts: posts}}

	got, err := m.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", got[0].Slug)
	assert.Equal(t, "second", got[1].Slug)
	assert.Equal(t, "third", got[2].Slug)
}
