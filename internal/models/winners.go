package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Winners is the optional top-three annotation for a completed competitive
// event. At most one row exists per event; submissions overwrite in place.
type Winners struct {
	bun.BaseModel `bun:"table:winners"`

	EventID   string    `bun:"event_id,pk" json:"event_id"`
	First     string    `bun:"first,notnull" json:"first"`
	Second    string    `bun:"second,notnull" json:"second"`
	Third     string    `bun:"third,notnull" json:"third"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Validate rejects a submission with any empty position.
func (w *Winners) Validate() error {
	var fields []string
	if w.First == "" {
		fields = append(fields, "first")
	}
	if w.Second == "" {
		fields = append(fields, "second")
	}
	if w.Third == "" {
		fields = append(fields, "third")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
