package analytics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ms-events/internal/models"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func setupTestDB(t *testing.T) *bun.DB {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	ctx := context.Background()

	if _, err := bunDB.NewCreateTable().Model((*models.Event)(nil)).Exec(ctx); err != nil {
		t.Fatalf("Failed to create events table: %v", err)
	}
	if _, err := bunDB.NewCreateTable().Model((*models.Winners)(nil)).Exec(ctx); err != nil {
		t.Fatalf("Failed to create winners table: %v", err)
	}
	return bunDB
}

func seedEvent(t *testing.T, db *bun.DB, id, name, category, eventType, date string, capacity int) {
	t.Helper()
	now := time.Now()
	event := models.Event{
		ID: id, Name: name, Date: date, Time: "10:00",
		Location: "Main Hall", Type: eventType, Category: category,
		Description: "d", Image: "i", Capacity: capacity,
		CreatedAt: now, UpdatedAt: now,
	}
	_, err := db.NewInsert().Model(&event).Exec(context.Background())
	require.NoError(t, err)
}

func TestGetSummary(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	seedEvent(t, db, "e1", "Intro to Rust", models.CategoryWorkshop, models.TypeOffline, "2024-05-10", 40)
	seedEvent(t, db, "e2", "Intro Hack", models.CategoryHackathon, models.TypeOffline, "2024-05-12", 120)
	seedEvent(t, db, "e3", "Cloud Summit", models.CategoryEvent, models.TypeOnline, "2024-03-01", 500)
	seedEvent(t, db, "e4", "Go Workshop", models.CategoryWorkshop, models.TypeOnline, "2024-02-01 - 2024-02-03", 30)

	winners := models.Winners{EventID: "e3", First: "A", Second: "B", Third: "C", UpdatedAt: time.Now()}
	_, err := db.NewInsert().Model(&winners).Exec(ctx)
	require.NoError(t, err)

	clock := fixedClock{now: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewService(db, clock)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalEvents)
	assert.Equal(t, 2, summary.Upcoming)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 1, summary.WithWinners)
	assert.Equal(t, 690, summary.TotalCapacity)
	assert.Equal(t, map[string]int{
		models.CategoryWorkshop:  2,
		models.CategoryHackathon: 1,
		models.CategoryEvent:     1,
	}, summary.ByCategory)
	assert.Equal(t, map[string]int{
		models.TypeOffline: 2,
		models.TypeOnline:  2,
	}, summary.ByType)
}

func TestGetSummaryEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewService(db, fixedClock{now: time.Now()})

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalEvents)
	assert.Equal(t, 0, summary.Upcoming)
	assert.Equal(t, 0, summary.Completed)
	assert.Empty(t, summary.ByCategory)
	assert.Empty(t, summary.ByType)
}
