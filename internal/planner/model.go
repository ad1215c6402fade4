package planner

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalendarEvent is a single calendar entry. The recurring fields are stored
// as entered; expansion into concrete occurrences is not done server-side.
type CalendarEvent struct {
	ID               string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	StartDate        time.Time  `gorm:"index;not null" json:"startDate"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	AllDay           bool       `gorm:"not null;default:false" json:"allDay"`
	EventType        string     `gorm:"index;not null;default:'event'" json:"eventType"`
	Color            string     `json:"color,omitempty"`
	Location         string     `json:"location,omitempty"`
	RecurringPattern string     `json:"recurringPattern,omitempty"`
	RecurringUntil   *time.Time `json:"recurringUntil,omitempty"`
	CreatedAt        time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updatedAt"`
}

type JournalEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Title     string    `json:"title,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Mood      string    `gorm:"index" json:"mood,omitempty"`
	Tags      []string  `gorm:"serializer:json;type:text" json:"tags"`
	Weather   string    `json:"weather,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// Transaction amounts are positive magnitudes; direction is carried by Type.
type Transaction struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	Date          time.Time       `gorm:"index;not null" json:"date"`
	Type          string          `gorm:"index;not null" json:"type"`
	Category      string          `gorm:"index;not null" json:"category"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `gorm:"not null;default:'cash'" json:"paymentMethod"`
	Tags          []string        `gorm:"serializer:json;type:text" json:"tags"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
}

type Item struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Type        string     `gorm:"index;not null;default:'note'" json:"type"`
	Priority    string     `gorm:"index;not null;default:'medium'" json:"priority"`
	Status      string     `gorm:"index;not null;default:'active'" json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `gorm:"serializer:json;type:text" json:"tags"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`
}

func (Item) TableName() string { return "important_items" }

// Enum values accepted by the validation layer.
var (
	EventTypes     = []string{"event", "meeting", "deadline", "reminder", "task"}
	Moods          = []string{"happy", "neutral", "sad", "excited", "anxious", "grateful"}
	TxTypes        = []string{"income", "expense", "transfer"}
	PaymentMethods = []string{"cash", "card", "bank_transfer", "upi"}
	ItemTypes      = []string{"note", "todo", "reminder", "goal", "idea"}
	Priorities     = []string{"low", "medium", "high", "urgent"}
	Statuses       = []string{"active", "completed", "archived"}
)
