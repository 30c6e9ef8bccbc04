package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingsColName     = "venue_bookings"
	BookingLocksColName = "booking_locks"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCanceled  BookingStatus = "CANCELED"
)

// ServiceSelection is the fixed-shape tier choice for the four bookable
// services. Every key is required on a booking request.
type ServiceSelection struct {
	Catering    string `bson:"catering" json:"catering" validate:"required"`
	Decoration  string `bson:"decoration" json:"decoration" validate:"required"`
	Photography string `bson:"photography" json:"photography" validate:"required"`
	Music       string `bson:"music" json:"music" validate:"required"`
}

// ServiceCosts is the priced breakdown matching a ServiceSelection.
type ServiceCosts struct {
	Catering    float64 `bson:"catering" json:"catering"`
	Decoration  float64 `bson:"decoration" json:"decoration"`
	Photography float64 `bson:"photography" json:"photography"`
	Music       float64 `bson:"music" json:"music"`
}

func (sc ServiceCosts) Sum() float64 {
	return sc.Catering + sc.Decoration + sc.Photography + sc.Music
}

type VenueBooking struct {
	ID      uuid.UUID `bson:"_id" json:"id"`
	VenueID uuid.UUID `bson:"venue_id" json:"venue_id"`
	UserID  uuid.UUID `bson:"user_id" json:"user_id"`

	// Closed date interval; a booking ending the day another starts
	// still conflicts.
	StartDate time.Time `bson:"start_date" json:"start_date"`
	EndDate   time.Time `bson:"end_date" json:"end_date"`

	Guests   int              `bson:"guests" json:"guests"`
	Services ServiceSelection `bson:"services" json:"services"`
	Costs    ServiceCosts     `bson:"service_costs" json:"service_costs"`

	VenueCost float64 `bson:"venue_cost" json:"venue_cost"`
	TotalCost float64 `bson:"total_cost" json:"total_cost"`

	Status BookingStatus `bson:"status" json:"status"`

	EventID   *uuid.UUID `bson:"event_id,omitempty" json:"event_id,omitempty"`
	PaymentID *uuid.UUID `bson:"payment_id,omitempty" json:"payment_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingLock is an advisory lock document. Its _id encodes the venue so a
// unique index turns concurrent booking attempts for one venue into a
// first-writer-wins race; a TTL index reaps locks from crashed requests.
type BookingLock struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// BookingDetail is the fully-linked record returned after a successful
// booking: the booking plus its spawned event, payment, and venue.
type BookingDetail struct {
	Booking *VenueBooking `json:"booking"`
	Event   *Event        `json:"event"`
	Payment *Payment      `json:"payment"`
	Venue   *Venue        `json:"venue"`
}
