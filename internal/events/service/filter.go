package events

import (
	"strings"

	"ms-events/internal/models"
	"ms-events/internal/temporal"
)

// Filter is the active filter configuration for an event listing. Category
// and Type match exactly unless set to "all" (or left empty); Search is a
// case-insensitive substring match on the event name. All predicates AND.
type Filter struct {
	Category string
	Type     string
	Search   string
}

// Matches reports whether a single event passes every active predicate.
func (f Filter) Matches(event models.Event) bool {
	if f.Category != "" && f.Category != models.FilterAll && event.Category != f.Category {
		return false
	}
	if f.Type != "" && f.Type != models.FilterAll && event.Type != f.Type {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(event.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// FilterEvents returns the subset of events matching f. The input slice is
// never mutated.
func FilterEvents(events []models.Event, f Filter) []models.Event {
	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		if f.Matches(event) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// Sections is a listing split into its upcoming and completed halves.
type Sections struct {
	Upcoming  []models.Event `json:"upcoming"`
	Completed []models.Event `json:"completed"`
}

// Partition splits events by completion status against the given clock,
// preserving order within each section.
func Partition(events []models.Event, clock temporal.Clock) Sections {
	sections := Sections{
		Upcoming:  []models.Event{},
		Completed: []models.Event{},
	}
	for _, event := range events {
		if temporal.Classify(event.Date, clock) == temporal.StatusCompleted {
			sections.Completed = append(sections.Completed, event)
		} else {
			sections.Upcoming = append(sections.Upcoming, event)
		}
	}
	return sections
}

// FilterAndPartition filters first, then partitions, so both sections share
// the same filter configuration.
func FilterAndPartition(events []models.Event, f Filter, clock temporal.Clock) Sections {
	return Partition(FilterEvents(events, f), clock)
}
