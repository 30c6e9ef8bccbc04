package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"festa/internal/apperrors"
	"festa/internal/models"
)

// EventsService handles standalone events, created independently of a venue
// booking.
type EventsService struct {
	eventsRepo models.EventsRepo
	venuesRepo models.VenuesRepo
}

func NewEventsService(eventsRepo models.EventsRepo, venuesRepo models.VenuesRepo) *EventsService {
	return &EventsService{
		eventsRepo: eventsRepo,
		venuesRepo: venuesRepo,
	}
}

func (es *EventsService) CreateEvent(ctx context.Context, event *models.Event, organizerId uuid.UUID) (*models.Event, error) {
	if err := models.Validate.Struct(event); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid event data: %v", err))
	}
	if event.Date.IsZero() {
		return nil, apperrors.Validation("event date is required")
	}

	if event.VenueID != nil {
		if _, err := es.venuesRepo.GetVenueByID(ctx, *event.VenueID); err != nil {
			return nil, err
		}
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	now := time.Now()
	event.OrganizerID = organizerId
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := es.eventsRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (es *EventsService) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("invalid event ID")
	}
	return es.eventsRepo.GetEventByID(ctx, id)
}

func (es *EventsService) ListEvents(ctx context.Context, publicOnly bool, offset, limit int) ([]*models.Event, int64, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, apperrors.Validation("invalid offset or limit")
	}
	return es.eventsRepo.ListEvents(ctx, publicOnly, offset, limit)
}
