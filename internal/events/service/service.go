package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ms-events/internal/models"
	"ms-events/internal/temporal"
)

type EventDBLayer interface {
	CreateEvent(event models.Event) error
	GetEventByID(id string) (*models.Event, error)
	UpdateEvent(event models.Event) error
	DeleteEvent(id string) error
	ListEvents(category, eventType string) ([]models.Event, error)
}

// EventPublisher streams lifecycle notifications. Publishing is best-effort;
// the service logs and moves on when the broker is down.
type EventPublisher interface {
	PublishEventCreated(event models.Event) error
	PublishEventUpdated(event models.Event) error
	PublishEventDeleted(eventID string) error
}

type EventService struct {
	DB        EventDBLayer
	Publisher EventPublisher
	Clock     temporal.Clock
}

func NewEventService(db EventDBLayer, publisher EventPublisher, clock temporal.Clock) *EventService {
	if clock == nil {
		clock = temporal.SystemClock()
	}
	return &EventService{DB: db, Publisher: publisher, Clock: clock}
}

// CreateEvent validates and persists a new event, assigning its ID.
func (s *EventService) CreateEvent(event models.Event) (*models.Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	event.ID = uuid.New().String()
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.DB.CreateEvent(event); err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		_ = s.Publisher.PublishEventCreated(event)
	}
	return &event, nil
}

func (s *EventService) GetEvent(id string) (*models.Event, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent replaces the mutable fields of an existing event. ID and
// creation time never change.
func (s *EventService) UpdateEvent(id string, updateData models.Event) (*models.Event, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", id, err)
	}

	event.Name = updateData.Name
	event.Date = updateData.Date
	event.Time = updateData.Time
	event.Location = updateData.Location
	event.Type = updateData.Type
	event.Category = updateData.Category
	event.Description = updateData.Description
	event.Image = updateData.Image
	event.Capacity = updateData.Capacity
	event.UpdatedAt = time.Now()

	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := s.DB.UpdateEvent(*event); err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		_ = s.Publisher.PublishEventUpdated(*event)
	}
	return event, nil
}

func (s *EventService) DeleteEvent(id string) error {
	if err := s.DB.DeleteEvent(id); err != nil {
		return err
	}
	if s.Publisher != nil {
		_ = s.Publisher.PublishEventDeleted(id)
	}
	return nil
}

// ListEvents returns the events matching the filter, ordered as stored.
// The store pre-filters on category and type; search and the optional
// status narrowing are applied here, with the classifier as the source of
// truth for the upcoming/completed decision.
func (s *EventService) ListEvents(status temporal.Status, filter Filter) ([]models.Event, error) {
	events, err := s.DB.ListEvents(filter.Category, filter.Type)
	if err != nil {
		return nil, err
	}

	filtered := FilterEvents(events, filter)
	if status == "" {
		return filtered, nil
	}

	sections := Partition(filtered, s.Clock)
	if status == temporal.StatusCompleted {
		return sections.Completed, nil
	}
	return sections.Upcoming, nil
}

// ListSections returns the filtered listing already split into upcoming and
// completed, the shape the admin portal renders.
func (s *EventService) ListSections(filter Filter) (*Sections, error) {
	events, err := s.DB.ListEvents(filter.Category, filter.Type)
	if err != nil {
		return nil, err
	}
	sections := FilterAndPartition(events, filter, s.Clock)
	return &sections, nil
}
