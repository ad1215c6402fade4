package db

import (
	"fmt"

	"folio/internal/blog"
	"folio/internal/content"
	"folio/internal/planner"
	"folio/internal/prep"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&content.Blob{},
		&blog.Post{},
		&planner.CalendarEvent{},
		&planner.JournalEntry{},
		&planner.Transaction{},
		&planner.Item{},
		&prep.Path{},
		&prep.Topic{},
		&prep.Question{},
		&prep.Resource{},
	); err != nil {
		return err
	}

	// Helpful indexes beyond what the struct tags declare
	stmts := []string{
		`create index if not exists idx_blog_published_at on blog_posts(published, published_at desc);`,
		`create index if not exists idx_events_range on calendar_events(start_date, event_type);`,
		`create index if not exists idx_journal_date on journal_entries(date desc);`,
		`create index if not exists idx_tx_date_type on transactions(date, type);`,
		`create index if not exists idx_items_status on important_items(status, created_at desc);`,
		`create index if not exists idx_topics_path_order on prep_topics(path_id, sort_order);`,
		`create index if not exists idx_questions_topic_order on prep_questions(topic_id, sort_order);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
