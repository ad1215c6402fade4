package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventFilter struct {
	From      *time.Time
	To        *time.Time
	EventType string
}

type CreateEventInput struct {
	Title            string
	Description      string
	StartDate        time.Time
	EndDate          *time.Time
	AllDay           bool
	EventType        string
	Color            string
	Location         string
	RecurringPattern string
	RecurringUntil   *time.Time
}

type UpdateEventInput struct {
	Title            *string
	Description      *string
	StartDate        *time.Time
	EndDate          *time.Time
	AllDay           *bool
	EventType        *string
	Color            *string
	Location         *string
	RecurringPattern *string
	RecurringUntil   *time.Time
}

func (s *Service) ListEvents(ctx context.Context, f EventFilter) ([]CalendarEvent, error) {
	q := s.DB.WithContext(ctx).Model(&CalendarEvent{})
	if f.From != nil {
		q = q.Where("start_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_date <= ?", *f.To)
	}
	if f.EventType != "" {
		q = q.Where("event_type = ?", f.EventType)
	}

	var rows []CalendarEvent
	if err := q.Order("start_date asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (*CalendarEvent, error) {
	var e CalendarEvent
	if err := s.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

// CreateEvent assigns the id, persists, and re-reads the stored row so
// store-computed fields are visible to the caller immediately.
func (s *Service) CreateEvent(ctx context.Context, in CreateEventInput) (*CalendarEvent, error) {
	e := CalendarEvent{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Description:      in.Description,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		AllDay:           in.AllDay,
		EventType:        in.EventType,
		Color:            in.Color,
		Location:         in.Location,
		RecurringPattern: in.RecurringPattern,
		RecurringUntil:   in.RecurringUntil,
	}
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, e.ID)
}

// UpdateEvent applies only the fields present in the input; absent fields
// keep their stored values.
func (s *Service) UpdateEvent(ctx context.Context, id string, in UpdateEventInput) (*CalendarEvent, error) {
	var e CalendarEvent
	if err := s.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.AllDay != nil {
		e.AllDay = *in.AllDay
	}
	if in.EventType != nil {
		e.EventType = *in.EventType
	}
	if in.Color != nil {
		e.Color = *in.Color
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.RecurringPattern != nil {
		e.RecurringPattern = *in.RecurringPattern
	}
	if in.RecurringUntil != nil {
		e.RecurringUntil = in.RecurringUntil
	}

	if err := s.DB.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, id)
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&CalendarEvent{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
