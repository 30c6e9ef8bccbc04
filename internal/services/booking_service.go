package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"festa/internal/apperrors"
	"festa/internal/models"
)

// bookingLockTTL bounds how long a stale lock can block a venue if a
// request dies between acquire and release.
const bookingLockTTL = 10 * time.Second

// BookingRequest carries everything a venue booking needs beyond the venue
// and user ids.
type BookingRequest struct {
	EventName        string                  `json:"event_name" validate:"required"`
	EventDescription string                  `json:"event_description"`
	EventCategory    string                  `json:"event_category"`
	EventType        string                  `json:"event_type" validate:"omitempty,oneof=public private"`
	StartDate        time.Time               `json:"start_date" validate:"required"`
	EndDate          time.Time               `json:"end_date" validate:"required"`
	Guests           int                     `json:"guests" validate:"required,gt=0"`
	Services         models.ServiceSelection `json:"services"`
	PaymentMethod    string                  `json:"payment_method"`
}

// BookingService orchestrates venue bookings: it validates, prices, checks
// availability, charges the gateway, and persists the Event + VenueBooking +
// Payment group atomically. No partial state survives a failure.
type BookingService struct {
	venuesRepo   models.VenuesRepo
	bookingsRepo models.BookingsRepo
	eventsRepo   models.EventsRepo
	paymentsRepo models.PaymentsRepo
	availability *AvailabilityService
	gateway      PaymentGateway
	logger       *slog.Logger
}

func NewBookingService(
	venuesRepo models.VenuesRepo,
	bookingsRepo models.BookingsRepo,
	eventsRepo models.EventsRepo,
	paymentsRepo models.PaymentsRepo,
	availability *AvailabilityService,
	gateway PaymentGateway,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		venuesRepo:   venuesRepo,
		bookingsRepo: bookingsRepo,
		eventsRepo:   eventsRepo,
		paymentsRepo: paymentsRepo,
		availability: availability,
		gateway:      gateway,
		logger:       logger,
	}
}

func (bs *BookingService) CreateBooking(ctx context.Context, venueId, userId uuid.UUID, req *BookingRequest) (*models.BookingDetail, error) {
	if venueId == uuid.Nil || userId == uuid.Nil {
		return nil, apperrors.Validation("invalid venue or user ID")
	}
	if err := models.Validate.Struct(req); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid booking request: %v", err))
	}
	if err := models.Validate.Struct(req.Services); err != nil {
		return nil, apperrors.Validation("services must include catering, decoration, photography and music")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, apperrors.Validation("start and end dates are required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.Validation("end date must not be before start date")
	}

	venue, err := bs.venuesRepo.GetVenueByID(ctx, venueId)
	if err != nil {
		return nil, err
	}
	if req.Guests > venue.Capacity {
		return nil, apperrors.Validation(fmt.Sprintf("venue capacity is %d, requested %d guests", venue.Capacity, req.Guests))
	}

	days := BookingDays(req.StartDate, req.EndDate)
	costs := ServicesCost(req.Services)
	venueCost := float64(days) * venue.PricePerDay
	totalCost := venueCost + costs.Sum()
	if totalCost <= 0 || math.IsInf(totalCost, 0) || math.IsNaN(totalCost) {
		return nil, apperrors.Validation("booking cost must be a finite positive number")
	}

	available, err := bs.availability.IsAvailable(ctx, venueId, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperrors.Conflict("venue is not available for the requested dates")
	}

	// The lock serializes check-then-insert per venue; the in-transaction
	// re-check below rejects whichever racer arrives second.
	lockId := fmt.Sprintf("venue_booking:%s", venueId)
	if err := bs.bookingsRepo.AcquireLock(ctx, lockId, bookingLockTTL); err != nil {
		return nil, err
	}
	defer func() {
		if err := bs.bookingsRepo.ReleaseLock(ctx, lockId); err != nil {
			bs.logger.Warn("failed to release booking lock", "lock_id", lockId, "error", err)
		}
	}()

	bookingId := uuid.New()
	txnId, err := bs.gateway.Charge(ctx, totalCost, req.PaymentMethod, bookingId.String())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	eventId := uuid.New()
	paymentId := uuid.New()

	event := &models.Event{
		ID:          eventId,
		Title:       req.EventName,
		Description: req.EventDescription,
		Category:    req.EventCategory,
		Date:        req.StartDate,
		Public:      req.EventType == "public",
		OrganizerID: userId,
		VenueID:     &venueId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	booking := &models.VenueBooking{
		ID:        bookingId,
		VenueID:   venueId,
		UserID:    userId,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guests:    req.Guests,
		Services:  req.Services,
		Costs:     costs,
		VenueCost: venueCost,
		TotalCost: totalCost,
		Status:    models.BookingStatusConfirmed,
		EventID:   &eventId,
		PaymentID: &paymentId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	payment := &models.Payment{
		ID:        paymentId,
		BookingID: bookingId,
		Amount:    totalCost,
		Status:    models.PaymentStatusCompleted,
		Method:    req.PaymentMethod,
		GatewayTx: txnId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = bs.bookingsRepo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		overlapping, err := bs.bookingsRepo.FindOverlapping(sessCtx, venueId, req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return apperrors.Conflict("venue is not available for the requested dates")
		}
		if err := bs.eventsRepo.CreateEvent(sessCtx, event); err != nil {
			return err
		}
		if err := bs.bookingsRepo.CreateBooking(sessCtx, booking); err != nil {
			return err
		}
		return bs.paymentsRepo.CreatePayment(sessCtx, payment)
	})
	if err != nil {
		// The group rolled back; the charge must not stand.
		if voidErr := bs.gateway.Void(ctx, txnId); voidErr != nil {
			bs.logger.Error("failed to void payment after rollback", "txn_id", txnId, "error", voidErr)
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Persistence("failed to persist booking", err)
	}

	bs.logger.Info("booking confirmed",
		"booking_id", bookingId,
		"venue_id", venueId,
		"user_id", userId,
		"total_cost", totalCost,
		"days", days,
	)

	return &models.BookingDetail{
		Booking: booking,
		Event:   event,
		Payment: payment,
		Venue:   venue,
	}, nil
}

// GetBooking returns the fully-linked record. Owners and admins only.
func (bs *BookingService) GetBooking(ctx context.Context, bookingId, userId uuid.UUID, isAdmin bool) (*models.BookingDetail, error) {
	booking, err := bs.bookingsRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userId && !isAdmin {
		return nil, apperrors.Forbidden("you can only view your own bookings")
	}

	detail := &models.BookingDetail{Booking: booking}
	if venue, err := bs.venuesRepo.GetVenueByID(ctx, booking.VenueID); err == nil {
		detail.Venue = venue
	}
	if booking.EventID != nil {
		if event, err := bs.eventsRepo.GetEventByID(ctx, *booking.EventID); err == nil {
			detail.Event = event
		}
	}
	if booking.PaymentID != nil {
		if payment, err := bs.paymentsRepo.GetPaymentByID(ctx, *booking.PaymentID); err == nil {
			detail.Payment = payment
		}
	}
	return detail, nil
}

func (bs *BookingService) ListBookingsByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*models.VenueBooking, int64, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, apperrors.Validation("invalid offset or limit")
	}
	return bs.bookingsRepo.ListBookingsByUser(ctx, userId, offset, limit)
}

// CancelBooking flips a booking to CANCELED, freeing its date range for the
// availability checker. Owners and admins only.
func (bs *BookingService) CancelBooking(ctx context.Context, bookingId, userId uuid.UUID, isAdmin bool) error {
	booking, err := bs.bookingsRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return err
	}
	if booking.UserID != userId && !isAdmin {
		return apperrors.Forbidden("you can only cancel your own bookings")
	}
	if booking.Status == models.BookingStatusCanceled {
		return apperrors.Conflict("booking is already canceled")
	}

	if err := bs.bookingsRepo.UpdateBookingStatus(ctx, bookingId, models.BookingStatusCanceled); err != nil {
		return err
	}
	bs.logger.Info("booking canceled", "booking_id", bookingId, "user_id", userId)
	return nil
}
