package analytics

import (
	"context"

	"github.com/uptrace/bun"

	"ms-events/internal/models"
	"ms-events/internal/temporal"
)

type Service struct {
	db    *bun.DB
	clock temporal.Clock
}

func NewService(db *bun.DB, clock temporal.Clock) *Service {
	if clock == nil {
		clock = temporal.SystemClock()
	}
	return &Service{db: db, clock: clock}
}

// Summary is the dashboard rollup: how many events exist, how they split
// by completion status, category and type, and how many completed events
// have winners recorded.
type Summary struct {
	TotalEvents   int            `json:"total_events"`
	Upcoming      int            `json:"upcoming"`
	Completed     int            `json:"completed"`
	WithWinners   int            `json:"with_winners"`
	TotalCapacity int            `json:"total_capacity"`
	ByCategory    map[string]int `json:"by_category"`
	ByType        map[string]int `json:"by_type"`
}

type groupCount struct {
	Key   string `bun:"key"`
	Count int    `bun:"count"`
}

// GetSummary computes the dashboard rollup. Status counts go through the
// classifier rather than SQL because the stored date is an encoded string,
// not a timestamp column.
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	var events []models.Event
	if err := s.db.NewSelect().Model(&events).Scan(ctx); err != nil {
		return nil, &models.StoreError{Op: "analytics: list events", Err: err}
	}

	summary := &Summary{
		TotalEvents: len(events),
		ByCategory:  map[string]int{},
		ByType:      map[string]int{},
	}
	for _, event := range events {
		if temporal.Classify(event.Date, s.clock) == temporal.StatusCompleted {
			summary.Completed++
		} else {
			summary.Upcoming++
		}
		summary.TotalCapacity += event.Capacity
	}

	byCategory, err := s.groupEvents(ctx, "category")
	if err != nil {
		return nil, err
	}
	summary.ByCategory = byCategory

	byType, err := s.groupEvents(ctx, "type")
	if err != nil {
		return nil, err
	}
	summary.ByType = byType

	withWinners, err := s.db.NewSelect().
		Model((*models.Winners)(nil)).
		Count(ctx)
	if err != nil {
		return nil, &models.StoreError{Op: "analytics: count winners", Err: err}
	}
	summary.WithWinners = withWinners

	return summary, nil
}

func (s *Service) groupEvents(ctx context.Context, column string) (map[string]int, error) {
	var rows []groupCount
	err := s.db.NewSelect().
		Model((*models.Event)(nil)).
		ColumnExpr("? AS key", bun.Ident(column)).
		ColumnExpr("count(*) AS count").
		GroupExpr("?", bun.Ident(column)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, &models.StoreError{Op: "analytics: group events", Err: err}
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}
