package planner

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "planner.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&CalendarEvent{}, &JournalEntry{}, &Transaction{}, &Item{}))

	return &Service{DB: gdb}
}

func TestCreateItemRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateItem(ctx, CreateItemInput{
		Title:    "Renew passport",
		Type:     "todo",
		Priority: "high",
		DueDate:  &due,
		Tags:     []string{"admin", "travel"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero(), "store assigns createdAt")
	assert.Equal(t, "active", created.Status, "status defaults to active")

	got, err := svc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Tags, got.Tags)
	assert.Equal(t, created.Status, got.Status)
	assert.Equal(t, created.Priority, got.Priority)
}

func TestUpdateItemPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateItem(ctx, CreateItemInput{
		Title:    "Read paper",
		Type:     "todo",
		Priority: "medium",
		DueDate:  &due,
		Tags:     []string{"reading"},
	})
	require.NoError(t, err)

	archived := "archived"
	updated, err := svc.UpdateItem(ctx, created.ID, UpdateItemInput{Status: &archived})
	require.NoError(t, err)

	assert.Equal(t, "archived", updated.Status)
	// everything else untouched
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.Tags, updated.Tags)
	require.NotNil(t, updated.DueDate)
	assert.True(t, created.DueDate.Equal(*updated.DueDate))
}

func TestDeleteItemMissing(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteItem(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEventMissing(t *testing.T) {
	svc := newTestService(t)

	title := "x"
	_, err := svc.UpdateEvent(context.Background(), "missing", UpdateEventInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEventsFilterAndOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mk := func(title, date, typ string) {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		_, err = svc.CreateEvent(ctx, CreateEventInput{Title: title, StartDate: d, EventType: typ})
		require.NoError(t, err)
	}
	mk("later", "2025-03-01", "meeting")
	mk("earlier", "2025-01-01", "event")
	mk("middle", "2025-02-01", "meeting")

	all, err := svc.ListEvents(ctx, EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "earlier", all[0].Title, "calendar sorts start date ascending")
	assert.Equal(t, "later", all[2].Title)

	from := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	meetings, err := svc.ListEvents(ctx, EventFilter{From: &from, EventType: "meeting"})
	require.NoError(t, err)
	require.Len(t, meetings, 2)
	assert.Equal(t, "middle", meetings[0].Title)
}

func TestJournalOrderDescending(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, date := range []string{"2025-01-01", "2025-01-03", "2025-01-02"} {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		_, err = svc.CreateJournal(ctx, CreateJournalInput{Date: d, Content: "entry " + date})
		require.NoError(t, err)
	}

	entries, err := svc.ListJournal(ctx, JournalFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "entry 2025-01-03", entries[0].Content)
	assert.Equal(t, "entry 2025-01-01", entries[2].Content)
}

func TestGetAnalyticsDateRangeInclusive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mk := func(date, typ, category, amount string) {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		_, err = svc.CreateTransaction(ctx, CreateTransactionInput{
			Date:          d,
			Type:          typ,
			Category:      category,
			Amount:        decimal.RequireFromString(amount),
			PaymentMethod: "card",
		})
		require.NoError(t, err)
	}
	mk("2024-12-31", "income", "Salary", "999") // outside
	mk("2025-01-01", "income", "Salary", "500") // boundary, inclusive
	mk("2025-01-15", "expense", "Food", "200")
	mk("2025-01-31", "expense", "Food", "50") // boundary, inclusive
	mk("2025-01-20", "transfer", "Savings", "1000")
	mk("2025-02-01", "expense", "Rent", "800") // outside

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	a, err := svc.GetAnalytics(ctx, start, end)
	require.NoError(t, err)

	assert.True(t, a.TotalIncome.Equal(decimal.RequireFromString("500")))
	assert.True(t, a.TotalExpenses.Equal(decimal.RequireFromString("250")))
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("250")))
	assert.True(t, a.ExpensesByCategory["Food"].Equal(decimal.RequireFromString("250")))
	require.Len(t, a.MonthlyTrend, 1)
	assert.Equal(t, "2025-01", a.MonthlyTrend[0].Month)
}

func TestTransactionDateTruncatedToDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// clients may send full timestamps; the stored date is day-granular so
	// a bare-date range still covers the whole end day
	created, err := svc.CreateTransaction(ctx, CreateTransactionInput{
		Date:          time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC),
		Type:          "expense",
		Category:      "Food",
		Amount:        decimal.RequireFromString("50"),
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.True(t, created.Date.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)))

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	a, err := svc.GetAnalytics(ctx, start, end)
	require.NoError(t, err)
	assert.True(t, a.TotalExpenses.Equal(decimal.RequireFromString("50")), "end-day transaction included")

	listed, err := svc.ListTransactions(ctx, TxFilter{From: &start, To: &end})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	// updates are normalized the same way
	late := time.Date(2025, 1, 30, 23, 59, 59, 0, time.UTC)
	updated, err := svc.UpdateTransaction(ctx, created.ID, UpdateTransactionInput{Date: &late})
	require.NoError(t, err)
	assert.True(t, updated.Date.Equal(time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)))
}

func TestCreateTransactionRoundTripAmount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, CreateTransactionInput{
		Date:          time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Type:          "expense",
		Category:      "Food",
		Amount:        decimal.RequireFromString("42.50"),
		PaymentMethod: "upi",
		Tags:          []string{"lunch"},
	})
	require.NoError(t, err)

	got, err := svc.GetTransaction(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, created.Tags, got.Tags)
}
