package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/apperrors"
	"festa/internal/models"
)

type bookingFixture struct {
	venues   *fakeVenuesRepo
	bookings *fakeBookingsRepo
	events   *fakeEventsRepo
	payments *fakePaymentsRepo
	gateway  *fakeGateway
	svc      *BookingService
	venue    *models.Venue
	userId   uuid.UUID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	venue := &models.Venue{
		ID:          uuid.New(),
		HostID:      uuid.New(),
		Name:        "Riverside Hall",
		Location:    "12 River St",
		Capacity:    150,
		PricePerDay: 300,
		Status:      models.VenueStatusActive,
	}

	f := &bookingFixture{
		venues:   newFakeVenuesRepo(venue),
		bookings: newFakeBookingsRepo(),
		events:   newFakeEventsRepo(),
		payments: newFakePaymentsRepo(),
		gateway:  &fakeGateway{},
		venue:    venue,
		userId:   uuid.New(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	availability := NewAvailabilityService(f.bookings)
	f.svc = NewBookingService(f.venues, f.bookings, f.events, f.payments, availability, f.gateway, logger)
	return f
}

func validRequest() *BookingRequest {
	return &BookingRequest{
		EventName: "Summer Gala",
		EventType: "public",
		StartDate: day(10),
		EndDate:   day(12),
		Guests:    80,
		Services: models.ServiceSelection{
			Catering:    TierPremium,
			Decoration:  TierStandard,
			Photography: TierNone,
			Music:       TierStandard,
		},
		PaymentMethod: "card",
	}
}

func TestCreateBookingPersistsLinkedGroup(t *testing.T) {
	f := newBookingFixture(t)

	detail, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())
	require.NoError(t, err)
	require.NotNil(t, detail)

	// 3 days at 300 plus 200 + 50 + 0 + 60 of services.
	assert.Equal(t, 900.0, detail.Booking.VenueCost)
	assert.Equal(t, 1210.0, detail.Booking.TotalCost)
	assert.Equal(t, models.BookingStatusConfirmed, detail.Booking.Status)
	assert.Equal(t, models.PaymentStatusCompleted, detail.Payment.Status)

	// Cross-links between the three persisted documents.
	require.NotNil(t, detail.Booking.EventID)
	require.NotNil(t, detail.Booking.PaymentID)
	assert.Equal(t, detail.Event.ID, *detail.Booking.EventID)
	assert.Equal(t, detail.Payment.ID, *detail.Booking.PaymentID)
	assert.Equal(t, detail.Booking.ID, detail.Payment.BookingID)
	require.NotNil(t, detail.Event.VenueID)
	assert.Equal(t, f.venue.ID, *detail.Event.VenueID)

	assert.Len(t, f.bookings.bookings, 1)
	assert.Len(t, f.events.events, 1)
	assert.Len(t, f.payments.payments, 1)
	assert.Equal(t, []float64{1210.0}, f.gateway.charges)
	assert.Empty(t, f.gateway.voided)

	// The advisory lock was released on the way out.
	assert.Empty(t, f.bookings.locks)
}

func TestCreateBookingThreeDayAllStandardTotal(t *testing.T) {
	f := newBookingFixture(t)
	f.venue.PricePerDay = 100

	req := validRequest()
	req.StartDate = day(1)
	req.EndDate = day(3)
	req.Services = models.ServiceSelection{
		Catering:    TierStandard,
		Decoration:  TierStandard,
		Photography: TierStandard,
		Music:       TierStandard,
	}

	detail, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, req)
	require.NoError(t, err)

	// 3 days at 100 plus 100 + 50 + 75 + 60 of standard services.
	assert.Equal(t, 585.0, detail.Booking.TotalCost)
	assert.Equal(t, detail.Booking.TotalCost, detail.Payment.Amount)
}

func TestCreateBookingRejectsUnavailableDates(t *testing.T) {
	f := newBookingFixture(t)
	existing := confirmedBooking(f.venue.ID, day(11), day(13))
	f.bookings.bookings[existing.ID] = existing

	_, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())

	assert.True(t, apperrors.IsKind(err, apperrors.CodeConflict))
	// Rejected before any money moved.
	assert.Empty(t, f.gateway.charges)
	assert.Empty(t, f.events.events)
	assert.Empty(t, f.payments.payments)
}

func TestCreateBookingRejectsOverCapacity(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.Guests = f.venue.Capacity + 1

	_, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, req)

	assert.True(t, apperrors.IsKind(err, apperrors.CodeValidation))
	assert.Empty(t, f.gateway.charges)
}

func TestCreateBookingRequiresAllServiceTiers(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.Services.Photography = ""

	_, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, req)

	assert.True(t, apperrors.IsKind(err, apperrors.CodeValidation))
}

func TestCreateBookingVenueNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), uuid.New(), f.userId, validRequest())

	assert.True(t, apperrors.IsKind(err, apperrors.CodeNotFound))
}

func TestCreateBookingPaymentDeclineLeavesNothingBehind(t *testing.T) {
	f := newBookingFixture(t)
	f.gateway.chargeErr = apperrors.ExternalService("payment declined", nil)

	_, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())

	assert.True(t, apperrors.IsKind(err, apperrors.CodeExternalService))
	assert.Empty(t, f.bookings.bookings)
	assert.Empty(t, f.events.events)
	assert.Empty(t, f.payments.payments)
	assert.Empty(t, f.bookings.locks)
}

func TestCreateBookingTransactionFailureVoidsCharge(t *testing.T) {
	f := newBookingFixture(t)
	f.payments.createErr = apperrors.Persistence("write failed", nil)

	_, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())

	require.Error(t, err)
	assert.Equal(t, []string{"txn_test"}, f.gateway.voided)
	assert.Empty(t, f.bookings.locks)
}

func TestCreateBookingHeldLockConflicts(t *testing.T) {
	f := newBookingFixture(t)
	f.bookings.locks["venue_booking:"+f.venue.ID.String()] = struct{}{}

	_, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())

	assert.True(t, apperrors.IsKind(err, apperrors.CodeConflict))
	assert.Empty(t, f.gateway.charges)
}

// racerBookingsRepo slips a competing booking in after the availability
// pre-check but before the transaction body runs.
type racerBookingsRepo struct {
	*fakeBookingsRepo
	racer *models.VenueBooking
}

func (r *racerBookingsRepo) ExecuteTransaction(ctx context.Context, fn models.TransactionFunc) error {
	r.mu.Lock()
	r.fakeBookingsRepo.bookings[r.racer.ID] = r.racer
	r.mu.Unlock()
	return r.fakeBookingsRepo.ExecuteTransaction(ctx, fn)
}

func TestCreateBookingInTransactionRecheckRejectsRacer(t *testing.T) {
	f := newBookingFixture(t)
	repo := &racerBookingsRepo{
		fakeBookingsRepo: f.bookings,
		racer:            confirmedBooking(f.venue.ID, day(10), day(12)),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewBookingService(f.venues, repo, f.events, f.payments, NewAvailabilityService(repo), f.gateway, logger)

	_, err := svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())

	assert.True(t, apperrors.IsKind(err, apperrors.CodeConflict))
	// The charge went through before the race was caught, so it must be voided.
	assert.Equal(t, []string{"txn_test"}, f.gateway.voided)
	// Only the racer's booking survives.
	assert.Len(t, f.bookings.bookings, 1)
	assert.Empty(t, f.events.events)
	assert.Empty(t, f.payments.payments)
}

func TestGetBookingEnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)
	detail, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())
	require.NoError(t, err)

	_, err = f.svc.GetBooking(context.Background(), detail.Booking.ID, uuid.New(), false)
	assert.True(t, apperrors.IsKind(err, apperrors.CodeForbidden))

	got, err := f.svc.GetBooking(context.Background(), detail.Booking.ID, uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, detail.Booking.ID, got.Booking.ID)
	assert.NotNil(t, got.Venue)
	assert.NotNil(t, got.Event)
	assert.NotNil(t, got.Payment)
}

func TestCancelBookingFreesDates(t *testing.T) {
	f := newBookingFixture(t)
	detail, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.CancelBooking(context.Background(), detail.Booking.ID, f.userId, false))

	// Canceling twice conflicts.
	err = f.svc.CancelBooking(context.Background(), detail.Booking.ID, f.userId, false)
	assert.True(t, apperrors.IsKind(err, apperrors.CodeConflict))

	// The canceled range is bookable again.
	_, err = f.svc.CreateBooking(context.Background(), f.venue.ID, uuid.New(), validRequest())
	assert.NoError(t, err)
}

func TestCancelBookingEnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)
	detail, err := f.svc.CreateBooking(context.Background(), f.venue.ID, f.userId, validRequest())
	require.NoError(t, err)

	err = f.svc.CancelBooking(context.Background(), detail.Booking.ID, uuid.New(), false)
	assert.True(t, apperrors.IsKind(err, apperrors.CodeForbidden))
}
