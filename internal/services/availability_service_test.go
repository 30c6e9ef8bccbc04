package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/apperrors"
	"festa/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func confirmedBooking(venueId uuid.UUID, start, end time.Time) *models.VenueBooking {
	return &models.VenueBooking{
		ID:        uuid.New(),
		VenueID:   venueId,
		UserID:    uuid.New(),
		StartDate: start,
		EndDate:   end,
		Status:    models.BookingStatusConfirmed,
	}
}

func TestIsAvailableWithNoBookings(t *testing.T) {
	repo := newFakeBookingsRepo()
	svc := NewAvailabilityService(repo)

	available, err := svc.IsAvailable(context.Background(), uuid.New(), day(1), day(3))

	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableRejectsOverlap(t *testing.T) {
	venueId := uuid.New()
	repo := newFakeBookingsRepo()
	existing := confirmedBooking(venueId, day(2), day(4))
	repo.bookings[existing.ID] = existing

	svc := NewAvailabilityService(repo)

	// Closed intervals: starting on the existing end day still conflicts.
	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully inside", day(3), day(3), false},
		{"straddles start", day(1), day(3), false},
		{"starts on existing end day", day(4), day(6), false},
		{"ends on existing start day", day(1), day(2), false},
		{"after", day(5), day(7), true},
		{"before", day(1), day(1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			available, err := svc.IsAvailable(context.Background(), venueId, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, available)
		})
	}
}

func TestIsAvailableIgnoresCanceledBookings(t *testing.T) {
	venueId := uuid.New()
	repo := newFakeBookingsRepo()
	canceled := confirmedBooking(venueId, day(2), day(4))
	canceled.Status = models.BookingStatusCanceled
	repo.bookings[canceled.ID] = canceled

	svc := NewAvailabilityService(repo)

	available, err := svc.IsAvailable(context.Background(), venueId, day(3), day(3))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableOtherVenueDoesNotConflict(t *testing.T) {
	repo := newFakeBookingsRepo()
	other := confirmedBooking(uuid.New(), day(2), day(4))
	repo.bookings[other.ID] = other

	svc := NewAvailabilityService(repo)

	available, err := svc.IsAvailable(context.Background(), uuid.New(), day(2), day(4))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableValidation(t *testing.T) {
	svc := NewAvailabilityService(newFakeBookingsRepo())
	ctx := context.Background()

	_, err := svc.IsAvailable(ctx, uuid.Nil, day(1), day(2))
	assert.True(t, apperrors.IsKind(err, apperrors.CodeValidation))

	_, err = svc.IsAvailable(ctx, uuid.New(), time.Time{}, day(2))
	assert.True(t, apperrors.IsKind(err, apperrors.CodeValidation))

	_, err = svc.IsAvailable(ctx, uuid.New(), day(5), day(2))
	assert.True(t, apperrors.IsKind(err, apperrors.CodeValidation))
}
