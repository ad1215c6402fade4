package blog

import (
	"context"
	"sort"
)

// ReadModel layers derived fields, ordering, and filters over a Source.
type ReadModel struct {
	Source Source
}

// All returns every post (admin listing), reading time filled in, newest
// first. The sort is stable so equal dates keep insertion order.
func (m *ReadModel) All(ctx context.Context) ([]Post, error) {
	posts, err := m.Source.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].ReadingTime = ReadingTime(posts[i].Content)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

// Published returns only published posts, for the public pages.
func (m *ReadModel) Published(ctx context.Context) ([]Post, error) {
	posts, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	out := posts[:0]
	for _, p := range posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *ReadModel) BySlug(ctx context.Context, slug string) (*Post, error) {
	p, err := m.Source.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	p.ReadingTime = ReadingTime(p.Content)
	return p, nil
}

func (m *ReadModel) ByTag(ctx context.Context, tag string) ([]Post, error) {
	posts, err := m.Published(ctx)
	if err != nil {
		return nil, err
	}
	out := []Post{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *ReadModel) ByCategory(ctx context.Context, category string) ([]Post, error) {
	posts, err := m.Published(ctx)
	if err != nil {
		return nil, err
	}
	out := []Post{}
	for _, p := range posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Tags returns the sorted, deduplicated tags across published posts.
func (m *ReadModel) Tags(ctx context.Context) ([]string, error) {
	posts, err := m.Published(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *ReadModel) Categories(ctx context.Context) ([]string, error) {
	posts, err := m.Published(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range posts {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}
