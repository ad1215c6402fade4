package content

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	DB *gorm.DB
}

func (s *Store) Get(ctx context.Context, pageType string) (json.RawMessage, error) {
	var b Blob
	if err := s.DB.WithContext(ctx).First(&b, "page_type = ?", pageType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b.Content, nil
}

// Set upserts the blob for pageType: first admin save creates the row, every
// later save overwrites it.
func (s *Store) Set(ctx context.Context, pageType string, raw json.RawMessage) error {
	b := Blob{PageType: pageType, Content: raw}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&b).Error
}
