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

// GetEventByID → fetch one event by its ID
func (d *DB) GetEventByID(id string) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, &models.StoreError{Op: "get event", Err: err}
	}
	return &event, nil
}

func (d *DB) CreateEvent(event models.Event) error {
	_, err := d.Bun.NewInsert().Model(&event).Exec(context.Background())
	if err != nil {
		return &models.StoreError{Op: "create event", Err: err}
	}
	return nil
}

func (d *DB) UpdateEvent(event models.Event) error {
	res, err := d.Bun.NewUpdate().
		Model(&event).
		Column("name", "date", "time", "location", "type", "category", "description", "image", "capacity", "updated_at").
		Where("id = ?", event.ID).
		Exec(context.Background())
	if err != nil {
		return &models.StoreError{Op: "update event", Err: err}
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (d *DB) DeleteEvent(id string) error {
	res, err := d.Bun.NewDelete().
		Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	if err != nil {
		return &models.StoreError{Op: "delete event", Err: err}
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListEvents returns events pre-filtered by category and type. "all" (or
// empty) disables a predicate. Status and free-text search stay in the
// service layer, which owns the completion classification.
func (d *DB) ListEvents(category, eventType string) ([]models.Event, error) {
	var events []models.Event
	q := d.Bun.NewSelect().Model(&events)

	if category != "" && category != models.FilterAll {
		q = q.Where("category = ?", category)
	}
	if eventType != "" && eventType != models.FilterAll {
		q = q.Where("type = ?", eventType)
	}

	err := q.Order("date ASC", "name ASC").Scan(context.Background())
	if err != nil {
		return nil, &models.StoreError{Op: "list events", Err: err}
	}
	return events, nil
}
