package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TxFilter struct {
	From     *time.Time
	To       *time.Time
	Type     string
	Category string
}

type CreateTransactionInput struct {
	Date          time.Time
	Type          string
	Category      string
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string
	Tags          []string
}

type UpdateTransactionInput struct {
	Date          *time.Time
	Type          *string
	Category      *string
	Amount        *decimal.Decimal
	Description   *string
	PaymentMethod *string
	Tags          *[]string
}

// dayOf drops the time-of-day component. Transaction dates are stored at
// day granularity so range filters over bare dates stay inclusive even when
// the client sends a full timestamp.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) ListTransactions(ctx context.Context, f TxFilter) ([]Transaction, error) {
	q := s.DB.WithContext(ctx).Model(&Transaction{})
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var rows []Transaction
	if err := q.Order("date desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	var t Transaction
	if err := s.DB.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *Service) CreateTransaction(ctx context.Context, in CreateTransactionInput) (*Transaction, error) {
	t := Transaction{
		ID:            uuid.NewString(),
		Date:          dayOf(in.Date),
		Type:          in.Type,
		Category:      in.Category,
		Amount:        in.Amount,
		Description:   in.Description,
		PaymentMethod: in.PaymentMethod,
		Tags:          in.Tags,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return s.GetTransaction(ctx, t.ID)
}

func (s *Service) UpdateTransaction(ctx context.Context, id string, in UpdateTransactionInput) (*Transaction, error) {
	var t Transaction
	if err := s.DB.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Date != nil {
		t.Date = dayOf(*in.Date)
	}
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.PaymentMethod != nil {
		t.PaymentMethod = *in.PaymentMethod
	}
	if in.Tags != nil {
		t.Tags = *in.Tags
	}

	if err := s.DB.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, err
	}
	return s.GetTransaction(ctx, id)
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&Transaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
