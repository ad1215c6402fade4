package blog

import (
	"context"
	"strings"
	"time"
)

// Post is the one blog shape both backends converge on. ReadingTime is
// derived from Content at read time and never stored, so content edits are
// reflected without a migration step.
type Post struct {
	Slug        string    `gorm:"primaryKey" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Tags        []string  `gorm:"serializer:json;type:text" json:"tags"`
	Category    string    `gorm:"index" json:"category,omitempty"`
	Published   bool      `gorm:"index;not null;default:false" json:"published"`
	PublishedAt time.Time `gorm:"index" json:"publishedAt"`
	Image       string    `json:"image,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	ReadingTime int       `gorm:"-" json:"readingTime"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (Post) TableName() string { return "blog_posts" }

// WordsPerMinute is the average reading speed the reading-time estimate
// divides by.
var WordsPerMinute = 238

// ReadingTime is ceil(words / WordsPerMinute): a pure function of the text,
// identical across storage backends.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// Source is a physical backing for posts. FileSource and DBSource both
// satisfy it and must return the identical Post shape.
type Source interface {
	All(ctx context.Context) ([]Post, error)
	BySlug(ctx context.Context, slug string) (*Post, error)
}
