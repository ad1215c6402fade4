package blog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("slug already exists")
)

// DBSource reads posts from the relational store.
type DBSource struct {
	DB *gorm.DB
}

func (d *DBSource) All(ctx context.Context) ([]Post, error) {
	var rows []Post
	if err := d.DB.WithContext(ctx).Order("published_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (d *DBSource) BySlug(ctx context.Context, slug string) (*Post, error) {
	var p Post
	if err := d.DB.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Service is the admin write path. Writes always target the relational
// store; the configured read source only governs the public pages.
type Service struct {
	DB *gorm.DB
}

type CreatePostInput struct {
	Slug        string
	Title       string
	Description string
	Content     string
	Tags        []string
	Category    string
	Published   bool
	PublishedAt *time.Time
	Image       string
	VideoURL    string
}

type UpdatePostInput struct {
	Title       *string
	Description *string
	Content     *string
	Tags        *[]string
	Category    *string
	Published   *bool
	PublishedAt *time.Time
	Image       *string
	VideoURL    *string
}

func (s *Service) Create(ctx context.Context, in CreatePostInput) (*Post, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&Post{}).Where("slug = ?", in.Slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}

	p := Post{
		Slug:        in.Slug,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Tags:        in.Tags,
		Category:    in.Category,
		Published:   in.Published,
		Image:       in.Image,
		VideoURL:    in.VideoURL,
	}
	// drafts stay undated until they are published, so publishing weeks
	// after drafting sorts by the publish date
	if in.PublishedAt != nil {
		p.PublishedAt = *in.PublishedAt
	} else if in.Published {
		p.PublishedAt = time.Now()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return (&DBSource{DB: s.DB}).BySlug(ctx, p.Slug)
}

// Update applies a partial change; the slug is the immutable key and cannot
// be changed here.
func (s *Service) Update(ctx context.Context, slug string, in UpdatePostInput) (*Post, error) {
	var p Post
	if err := s.DB.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	if in.PublishedAt != nil {
		p.PublishedAt = *in.PublishedAt
	} else if p.Published && p.PublishedAt.IsZero() {
		// first flip to published stamps the publish date
		p.PublishedAt = time.Now()
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.VideoURL != nil {
		p.VideoURL = *in.VideoURL
	}

	if err := s.DB.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return (&DBSource{DB: s.DB}).BySlug(ctx, slug)
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	res := s.DB.WithContext(ctx).Delete(&Post{}, "slug = ?", slug)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
