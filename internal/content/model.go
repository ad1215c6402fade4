package content

import (
	"encoding/json"
	"time"
)

// Blob holds the editable copy for one page as an opaque JSON document.
// At most one row exists per page type; rows are upserted, never deleted.
type Blob struct {
	PageType  string          `gorm:"primaryKey" json:"pageType"`
	Content   json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`
	CreatedAt time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"not null" json:"updatedAt"`
}

func (Blob) TableName() string { return "content_blobs" }

// PageTypes lists every page with editable copy. Unknown page types still
// resolve (to the empty-object default) so the resolver stays total.
var PageTypes = []string{
	"home",
	"about",
	"about-timeline",
	"experience",
	"experience-page",
	"skills",
	"courses",
	"life",
	"hire",
}
