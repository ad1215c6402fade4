package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ItemFilter struct {
	Status   string
	Type     string
	Priority string
}

type CreateItemInput struct {
	Title       string
	Description string
	Type        string
	Priority    string
	Status      string
	DueDate     *time.Time
	Tags        []string
}

type UpdateItemInput struct {
	Title       *string
	Description *string
	Type        *string
	Priority    *string
	Status      *string
	DueDate     *time.Time
	Tags        *[]string
}

func (s *Service) ListItems(ctx context.Context, f ItemFilter) ([]Item, error) {
	q := s.DB.WithContext(ctx).Model(&Item{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var rows []Item
	if err := q.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (*Item, error) {
	var it Item
	if err := s.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

func (s *Service) CreateItem(ctx context.Context, in CreateItemInput) (*Item, error) {
	it := Item{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Priority:    in.Priority,
		Status:      in.Status,
		DueDate:     in.DueDate,
		Tags:        in.Tags,
	}
	if it.Status == "" {
		it.Status = "active"
	}
	if it.Tags == nil {
		it.Tags = []string{}
	}
	if err := s.DB.WithContext(ctx).Create(&it).Error; err != nil {
		return nil, err
	}
	return s.GetItem(ctx, it.ID)
}

func (s *Service) UpdateItem(ctx context.Context, id string, in UpdateItemInput) (*Item, error) {
	var it Item
	if err := s.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Title != nil {
		it.Title = *in.Title
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.Type != nil {
		it.Type = *in.Type
	}
	if in.Priority != nil {
		it.Priority = *in.Priority
	}
	if in.Status != nil {
		it.Status = *in.Status
	}
	if in.DueDate != nil {
		it.DueDate = in.DueDate
	}
	if in.Tags != nil {
		it.Tags = *in.Tags
	}

	if err := s.DB.WithContext(ctx).Save(&it).Error; err != nil {
		return nil, err
	}
	return s.GetItem(ctx, id)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&Item{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
