package models

import (
	"time"

	"github.com/google/uuid"

	"festa/internal/geo"
)

const VenuesColName = "venues"

type VenueStatus string

const (
	VenueStatusPending  VenueStatus = "pending"
	VenueStatusActive   VenueStatus = "active"
	VenueStatusInactive VenueStatus = "inactive"
)

type Venue struct {
	ID     uuid.UUID `bson:"_id" json:"id"`
	HostID uuid.UUID `bson:"host_id" json:"host_id"`

	Name        string   `bson:"name" json:"name" validate:"required"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`

	// Location is the free-text address; Coordinates is what geocoding
	// resolved it to. Either both lat and lng are stored or neither is,
	// so a nil pointer means geocoding previously failed.
	Location    string           `bson:"location" json:"location" validate:"required"`
	Coordinates *geo.Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`

	Capacity    int     `bson:"capacity" json:"capacity" validate:"required,gt=0"`
	PricePerDay float64 `bson:"price_per_day" json:"price_per_day" validate:"required,gt=0"`

	Status    VenueStatus `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
}

// VenueSearchFilters narrows a venue search. Zero values mean "no filter";
// a non-empty Location triggers geocoding and radius filtering.
type VenueSearchFilters struct {
	Budget    float64
	Capacity  int
	Location  string
	RadiusKm  float64
	StartDate time.Time
	EndDate   time.Time
}

// HasDateWindow reports whether availability annotation was requested.
func (f VenueSearchFilters) HasDateWindow() bool {
	return !f.StartDate.IsZero() && !f.EndDate.IsZero()
}

// VenueSearchResult is a venue annotated with live availability for the
// requested window.
type VenueSearchResult struct {
	Venue     *Venue  `json:"venue"`
	Available bool    `json:"available"`
	Distance  float64 `json:"distance_km,omitempty"`
}

// Pagination describes the page of a search result set. Total counts all
// venues matching the budget/capacity filters, not the radius-narrowed set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}
