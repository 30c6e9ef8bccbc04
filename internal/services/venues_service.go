package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"festa/internal/apperrors"
	"festa/internal/geo"
	"festa/internal/helpers"
	"festa/internal/models"
)

// DefaultSearchRadiusKm applies when a location filter is given without an
// explicit radius.
const DefaultSearchRadiusKm = 10.0

type VenuesService struct {
	venuesRepo   models.VenuesRepo
	geocoder     geo.Geocoder
	availability *AvailabilityService
	uploader     helpers.ImageUploader
	logger       *slog.Logger
}

func NewVenuesService(
	venuesRepo models.VenuesRepo,
	geocoder geo.Geocoder,
	availability *AvailabilityService,
	uploader helpers.ImageUploader,
	logger *slog.Logger,
) *VenuesService {
	return &VenuesService{
		venuesRepo:   venuesRepo,
		geocoder:     geocoder,
		availability: availability,
		uploader:     uploader,
		logger:       logger,
	}
}

func (vs *VenuesService) CreateVenue(ctx context.Context, venue *models.Venue, hostId uuid.UUID) (*models.Venue, error) {
	if err := models.Validate.Struct(venue); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid venue data: %v", err))
	}

	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	now := time.Now()
	venue.HostID = hostId
	venue.CreatedAt = now
	venue.UpdatedAt = now
	venue.Status = models.VenueStatusActive

	// Coordinates stay nil when geocoding fails; search simply skips such
	// venues for radius filters.
	if coords, err := vs.geocoder.Geocode(ctx, venue.Location); err != nil {
		vs.logger.Warn("venue geocoding failed", "venue_id", venue.ID, "location", venue.Location, "error", err)
		venue.Coordinates = nil
	} else {
		venue.Coordinates = &coords
	}

	var uploadedIDs []string
	if len(venue.Images) > 0 && vs.uploader != nil {
		urls, publicIDs, err := vs.uploader.UploadImages(ctx, venue.Images, helpers.VenueFolder)
		if err != nil {
			return nil, apperrors.ExternalService("failed to upload venue images", err)
		}
		venue.Images = urls
		uploadedIDs = publicIDs
	}

	created, err := vs.venuesRepo.CreateVenue(ctx, venue)
	if err != nil {
		if len(uploadedIDs) > 0 && vs.uploader != nil {
			vs.uploader.DeleteImages(ctx, helpers.VenueFolder, uploadedIDs)
		}
		return nil, err
	}
	return created, nil
}

func (vs *VenuesService) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int64, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, apperrors.Validation("invalid offset or limit")
	}
	return vs.venuesRepo.ListVenues(ctx, offset, limit)
}

func (vs *VenuesService) GetVenueByID(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("invalid venue ID")
	}
	return vs.venuesRepo.GetVenueByID(ctx, id)
}

func (vs *VenuesService) ListVenuesByHost(ctx context.Context, hostId uuid.UUID, offset, limit int) ([]*models.Venue, int64, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, apperrors.Validation("invalid offset or limit")
	}
	if hostId == uuid.Nil {
		return nil, 0, apperrors.Validation("invalid host ID")
	}
	return vs.venuesRepo.ListVenuesByHost(ctx, hostId, offset, limit)
}

func (vs *VenuesService) UpdateVenue(ctx context.Context, venueId uuid.UUID, updates map[string]interface{}) (*models.Venue, error) {
	if venueId == uuid.Nil {
		return nil, apperrors.Validation("invalid venue ID")
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	// A changed address invalidates stored coordinates; re-geocode so both
	// fields stay in sync (or both go away).
	if loc, ok := updates["location"].(string); ok && loc != "" {
		if coords, err := vs.geocoder.Geocode(ctx, loc); err != nil {
			vs.logger.Warn("venue re-geocoding failed", "venue_id", venueId, "location", loc, "error", err)
			updates["coordinates"] = nil
		} else {
			updates["coordinates"] = coords
		}
	}

	return vs.venuesRepo.UpdateVenue(ctx, venueId, updates)
}

func (vs *VenuesService) DeleteVenue(ctx context.Context, hostId, venueId uuid.UUID) error {
	if hostId == uuid.Nil || venueId == uuid.Nil {
		return apperrors.Validation("invalid host ID or venue ID")
	}
	return vs.venuesRepo.DeleteVenue(ctx, hostId, venueId)
}

// SearchVenues composes the budget/capacity database filter, an optional
// geocoded bounding-box pre-filter, pagination, the true great-circle
// post-filter, and per-result availability annotation.
//
// Pagination applies to the bounding-box-filtered set and the radius
// post-filter runs on that page only, so a page can come back short even
// when more matches exist past the page boundary. Kept as documented
// behavior: the box overshoots the circle by a bounded margin and pages
// stay cheap to serve.
func (vs *VenuesService) SearchVenues(ctx context.Context, filters models.VenueSearchFilters, page, limit int) ([]*models.VenueSearchResult, models.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if filters.HasDateWindow() && filters.EndDate.Before(filters.StartDate) {
		return nil, models.Pagination{}, apperrors.Validation("end date must not be before start date")
	}

	baseQuery := models.VenueQuery{
		MaxPricePerDay: filters.Budget,
		MinCapacity:    filters.Capacity,
	}

	// Total counts the budget/capacity matches, not the radius-narrowed set.
	total, err := vs.venuesRepo.CountVenues(ctx, baseQuery)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	query := baseQuery
	var center *geo.Coordinates
	radius := filters.RadiusKm
	if radius <= 0 {
		radius = DefaultSearchRadiusKm
	}

	if filters.Location != "" {
		coords, err := vs.geocoder.Geocode(ctx, filters.Location)
		if err != nil {
			return nil, models.Pagination{}, err
		}
		center = &coords
		box := geo.BoxAround(coords, radius)
		query.Box = &box
	}

	skip := int64(page-1) * int64(limit)
	venues, err := vs.venuesRepo.QueryVenues(ctx, query, skip, int64(limit))
	if err != nil {
		return nil, models.Pagination{}, err
	}

	results := make([]*models.VenueSearchResult, 0, len(venues))
	for _, venue := range venues {
		result := &models.VenueSearchResult{Venue: venue, Available: true}

		if center != nil {
			// The box is an approximation; enforce the true radius here.
			if venue.Coordinates == nil {
				continue
			}
			d := geo.Distance(*center, *venue.Coordinates)
			if d > radius {
				continue
			}
			result.Distance = d
		}

		if filters.HasDateWindow() {
			available, err := vs.availability.IsAvailable(ctx, venue.ID, filters.StartDate, filters.EndDate)
			if err != nil {
				return nil, models.Pagination{}, err
			}
			result.Available = available
		}

		results = append(results, result)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	pagination := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
	return results, pagination, nil
}
