package prep

import "time"

// Path is a top-level interview-preparation track ("Android", "Backend", ...).
type Path struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Order       int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (Path) TableName() string { return "prep_paths" }

type Topic struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	PathID      string    `gorm:"type:uuid;index;not null" json:"pathId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Order       int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (Topic) TableName() string { return "prep_topics" }

type Question struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	TopicID    string    `gorm:"type:uuid;index;not null" json:"topicId"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text" json:"answer"`
	Difficulty string    `gorm:"not null;default:'medium'" json:"difficulty"`
	Tags       []string  `gorm:"serializer:json;type:text" json:"tags"`
	BlogSlug   string    `json:"blogSlug,omitempty"`
	Order      int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null" json:"updatedAt"`
}

func (Question) TableName() string { return "prep_questions" }

// Resource is owned by exactly one of PathID (general, path-level) or
// TopicID, never both.
type Resource struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	PathID      *string   `gorm:"type:uuid;index" json:"pathId,omitempty"`
	TopicID     *string   `gorm:"type:uuid;index" json:"topicId,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	URL         string    `gorm:"not null" json:"url"`
	Kind        string    `gorm:"not null;default:'article'" json:"kind"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (Resource) TableName() string { return "prep_resources" }

var (
	Difficulties  = []string{"easy", "medium", "hard"}
	ResourceKinds = []string{"article", "video", "book", "course", "documentation"}
)
