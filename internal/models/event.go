package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Event types and categories as stored. No other values are persisted.
const (
	TypeOnline  = "online"
	TypeOffline = "offline"

	CategoryEvent     = "event"
	CategoryWorkshop  = "workshop"
	CategoryHackathon = "hackathon"
)

// FilterAll is the sentinel used in filter configs to disable a predicate.
const FilterAll = "all"

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          string    `bun:"id,pk" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Date        string    `bun:"date,notnull" json:"date"`
	Time        string    `bun:"time,notnull" json:"time"`
	Location    string    `bun:"location,notnull" json:"location"`
	Type        string    `bun:"type,notnull" json:"type"`
	Category    string    `bun:"category,notnull" json:"category"`
	Description string    `bun:"description,notnull" json:"description"`
	Image       string    `bun:"image,notnull" json:"image"`
	Capacity    int       `bun:"capacity,notnull" json:"capacity"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

func ValidType(t string) bool {
	return t == TypeOnline || t == TypeOffline
}

func ValidCategory(c string) bool {
	return c == CategoryEvent || c == CategoryWorkshop || c == CategoryHackathon
}

// Validate checks the invariants a persisted event must hold and reports
// every offending field at once.
func (e *Event) Validate() error {
	var fields []string
	if e.Name == "" {
		fields = append(fields, "name")
	}
	if e.Date == "" {
		fields = append(fields, "date")
	}
	if e.Time == "" {
		fields = append(fields, "time")
	}
	if e.Location == "" {
		fields = append(fields, "location")
	}
	if e.Description == "" {
		fields = append(fields, "description")
	}
	if e.Image == "" {
		fields = append(fields, "image")
	}
	if !ValidType(e.Type) {
		fields = append(fields, "type")
	}
	if !ValidCategory(e.Category) {
		fields = append(fields, "category")
	}
	if e.Capacity < 0 {
		fields = append(fields, "capacity")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
