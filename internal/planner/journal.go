package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type JournalFilter struct {
	From *time.Time
	To   *time.Time
	Mood string
}

type CreateJournalInput struct {
	Date     time.Time
	Title    string
	Content  string
	Mood     string
	Tags     []string
	Weather  string
	Location string
}

type UpdateJournalInput struct {
	Date     *time.Time
	Title    *string
	Content  *string
	Mood     *string
	Tags     *[]string
	Weather  *string
	Location *string
}

func (s *Service) ListJournal(ctx context.Context, f JournalFilter) ([]JournalEntry, error) {
	q := s.DB.WithContext(ctx).Model(&JournalEntry{})
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	if f.Mood != "" {
		q = q.Where("mood = ?", f.Mood)
	}

	var rows []JournalEntry
	if err := q.Order("date desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetJournal(ctx context.Context, id string) (*JournalEntry, error) {
	var e JournalEntry
	if err := s.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (s *Service) CreateJournal(ctx context.Context, in CreateJournalInput) (*JournalEntry, error) {
	e := JournalEntry{
		ID:       uuid.NewString(),
		Date:     in.Date,
		Title:    in.Title,
		Content:  in.Content,
		Mood:     in.Mood,
		Tags:     in.Tags,
		Weather:  in.Weather,
		Location: in.Location,
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return s.GetJournal(ctx, e.ID)
}

func (s *Service) UpdateJournal(ctx context.Context, id string, in UpdateJournalInput) (*JournalEntry, error) {
	var e JournalEntry
	if err := s.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Content != nil {
		e.Content = *in.Content
	}
	if in.Mood != nil {
		e.Mood = *in.Mood
	}
	if in.Tags != nil {
		e.Tags = *in.Tags
	}
	if in.Weather != nil {
		e.Weather = *in.Weather
	}
	if in.Location != nil {
		e.Location = *in.Location
	}

	if err := s.DB.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, err
	}
	return s.GetJournal(ctx, id)
}

func (s *Service) DeleteJournal(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&JournalEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
