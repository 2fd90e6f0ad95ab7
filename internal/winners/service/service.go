package winners

import (
	"errors"
	"fmt"
	"time"

	"ms-events/internal/models"
)

type WinnersDBLayer interface {
	GetWinnersByEventID(eventID string) (*models.Winners, error)
	UpsertWinners(winners models.Winners) error
	DeleteWinners(eventID string) error
}

// EventDBLayer is the slice of the event store the winners service needs:
// upserts reference an event that must exist.
type EventDBLayer interface {
	GetEventByID(id string) (*models.Event, error)
}

// WinnersCache is optional; a nil cache means every read hits the store.
type WinnersCache interface {
	Get(eventID string) (*models.Winners, bool)
	Set(winners models.Winners) error
	Invalidate(eventID string) error
}

// WinnersPublisher streams winner submissions for downstream consumers.
type WinnersPublisher interface {
	PublishWinnersUpdated(winners models.Winners) error
}

type WinnersService struct {
	DB        WinnersDBLayer
	EventDB   EventDBLayer
	Cache     WinnersCache
	Publisher WinnersPublisher
}

func NewWinnersService(db WinnersDBLayer, eventDB EventDBLayer, cache WinnersCache, publisher WinnersPublisher) *WinnersService {
	return &WinnersService{DB: db, EventDB: eventDB, Cache: cache, Publisher: publisher}
}

// GetWinners returns the winners record for an event, or (nil, nil) when
// none has been recorded yet. Absence is not an error; only I/O failures
// are.
func (s *WinnersService) GetWinners(eventID string) (*models.Winners, error) {
	if s.Cache != nil {
		if cached, found := s.Cache.Get(eventID); found {
			return cached, nil
		}
	}

	winners, err := s.DB.GetWinnersByEventID(eventID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if s.Cache != nil {
		_ = s.Cache.Set(*winners)
	}
	return winners, nil
}

// UpsertWinners validates the three names and creates or overwrites the
// single winners record for the event. A failed validation leaves any
// stored record untouched.
func (s *WinnersService) UpsertWinners(eventID string, submission models.Winners) (*models.Winners, error) {
	submission.EventID = eventID
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EventDB.GetEventByID(eventID); err != nil {
		return nil, fmt.Errorf("event %s: %w", eventID, err)
	}

	submission.UpdatedAt = time.Now()
	if err := s.DB.UpsertWinners(submission); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		_ = s.Cache.Invalidate(eventID)
	}
	if s.Publisher != nil {
		_ = s.Publisher.PublishWinnersUpdated(submission)
	}
	return &submission, nil
}

// DeleteWinners removes the winners record for an event. Removing a record
// that never existed succeeds.
func (s *WinnersService) DeleteWinners(eventID string) error {
	if err := s.DB.DeleteWinners(eventID); err != nil {
		return err
	}
	if s.Cache != nil {
		_ = s.Cache.Invalidate(eventID)
	}
	return nil
}
