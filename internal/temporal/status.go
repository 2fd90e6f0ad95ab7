package temporal

import "time"

// Status is the derived completion state of an event relative to the
// current calendar day.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the recognized status values.
func (s Status) Valid() bool {
	return s == StatusUpcoming || s == StatusCompleted
}

// Clock supplies the current time. Classification takes it as a dependency
// so tests can pin "today".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// Classify decides whether an event with the given stored date value is
// completed or upcoming. A range compares by its end date; time of day is
// ignored. Empty or unparsable dates classify as upcoming so bad stored
// data never surfaces as an error or as a completed event.
func Classify(storedDate string, clock Clock) Status {
	if storedDate == "" {
		return StatusUpcoming
	}

	r := DecodeDate(storedDate)
	point := r.Start
	if r.IsRange() {
		point = r.End
	}

	now := clock.Now()
	d, err := time.ParseInLocation(DateLayout, point, now.Location())
	if err != nil {
		return StatusUpcoming
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return StatusCompleted
	}
	return StatusUpcoming
}
