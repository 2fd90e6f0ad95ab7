package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"ms-events/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// GetWinnersByEventID → fetch the winners row for an event. Absence maps
// to models.ErrNotFound; the service layer turns that into "no winners
// recorded yet".
func (d *DB) GetWinnersByEventID(eventID string) (*models.Winners, error) {
	var winners models.Winners
	err := d.Bun.NewSelect().
		Model(&winners).
		Where("event_id = ?", eventID).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.StoreError{Op: "get winners", Err: err}
	}
	return &winners, nil
}

// UpsertWinners writes the single winners row for an event, overwriting any
// previous submission in one statement so no partial write is ever visible.
func (d *DB) UpsertWinners(winners models.Winners) error {
	_, err := d.Bun.NewInsert().
		Model(&winners).
		On("CONFLICT (event_id) DO UPDATE").
		Set("first = EXCLUDED.first").
		Set("second = EXCLUDED.second").
		Set("third = EXCLUDED.third").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(context.Background())
	if err != nil {
		return &models.StoreError{Op: "upsert winners", Err: err}
	}
	return nil
}

// DeleteWinners removes the winners row for an event. Deleting a row that
// does not exist is not an error.
func (d *DB) DeleteWinners(eventID string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Winners)(nil)).
		Where("event_id = ?", eventID).
		Exec(context.Background())
	if err != nil {
		return &models.StoreError{Op: "delete winners", Err: err}
	}
	return nil
}
