package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"festa/internal/apperrors"
	"festa/internal/models"
)

// AvailabilityService answers whether a venue is free for a date range.
// Read-only; booking creation re-runs the same check inside its transaction.
type AvailabilityService struct {
	bookingsRepo models.BookingsRepo
}

func NewAvailabilityService(bookingsRepo models.BookingsRepo) *AvailabilityService {
	return &AvailabilityService{
		bookingsRepo: bookingsRepo,
	}
}

// IsAvailable reports whether no non-canceled booking overlaps [start, end].
// Ranges are closed intervals: a booking ending the same day another starts
// is a conflict.
func (as *AvailabilityService) IsAvailable(ctx context.Context, venueId uuid.UUID, start, end time.Time) (bool, error) {
	if venueId == uuid.Nil {
		return false, apperrors.Validation("invalid venue ID")
	}
	if start.IsZero() || end.IsZero() {
		return false, apperrors.Validation("start and end dates are required")
	}
	if end.Before(start) {
		return false, apperrors.Validation("end date must not be before start date")
	}

	overlapping, err := as.bookingsRepo.FindOverlapping(ctx, venueId, start, end)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}
