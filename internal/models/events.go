package models

import (
	"time"

	"github.com/google/uuid"
)

const EventsColName = "events"

// TicketTier is one price band of an event.
type TicketTier struct {
	SeatType       string  `bson:"seat_type" json:"seat_type" validate:"required"`
	Price          float64 `bson:"price" json:"price" validate:"gte=0"`
	AvailableSeats int     `bson:"available_seats" json:"available_seats" validate:"gte=0"`
}

// Event is created as a side effect of a venue booking, or independently by
// an organizer.
type Event struct {
	ID          uuid.UUID  `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title" validate:"required"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Category    string     `bson:"category,omitempty" json:"category,omitempty"`
	Date        time.Time  `bson:"date" json:"date"`
	Public      bool       `bson:"public" json:"public"`
	OrganizerID uuid.UUID  `bson:"organizer_id" json:"organizer_id"`
	VenueID     *uuid.UUID `bson:"venue_id,omitempty" json:"venue_id,omitempty"`

	TicketTiers []TicketTier `bson:"ticket_tiers,omitempty" json:"ticket_tiers,omitempty" validate:"dive"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
