package blog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// FileSource reads posts from Markdown/MDX files with YAML front matter.
// The slug is the file name minus its extension.
type FileSource struct {
	Dir string
}

type postFrontMatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
	Tags        []string  `yaml:"tags"`
	Category    string    `yaml:"category"`
	Published   bool      `yaml:"published"`
	Image       string    `yaml:"image"`
	VideoURL    string    `yaml:"videoUrl"`
}

func (f *FileSource) All(ctx context.Context) ([]Post, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Post{}, nil
		}
		return nil, err
	}

	posts := []Post{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".md" && ext != ".mdx" {
			continue
		}
		p, err := f.load(e.Name())
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, nil
}

func (f *FileSource) BySlug(ctx context.Context, slug string) (*Post, error) {
	for _, ext := range []string{".mdx", ".md"} {
		p, err := f.load(slug + ext)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (f *FileSource) load(name string) (*Post, error) {
	src, err := os.ReadFile(filepath.Join(f.Dir, name))
	if err != nil {
		return nil, err
	}

	var meta postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(name, filepath.Ext(name))
	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Post{
		Slug:        slug,
		Title:       meta.Title,
		Description: meta.Description,
		Content:     string(body),
		Tags:        tags,
		Category:    meta.Category,
		Published:   meta.Published,
		PublishedAt: meta.Date,
		Image:       meta.Image,
		VideoURL:    meta.VideoURL,
	}, nil
}
