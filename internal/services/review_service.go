package services

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"festa/internal/apperrors"
	"festa/internal/models"
)

type ReviewService struct {
	reviewsRepo models.ReviewsRepo
	venuesRepo  models.VenuesRepo
}

func NewReviewService(reviewsRepo models.ReviewsRepo, venuesRepo models.VenuesRepo) *ReviewService {
	return &ReviewService{
		reviewsRepo: reviewsRepo,
		venuesRepo:  venuesRepo,
	}
}

func (rs *ReviewService) CreateReview(ctx context.Context, review *models.VenueReview) (*models.VenueReview, error) {
	if review == nil {
		return nil, apperrors.Validation("review cannot be nil")
	}
	if review.UserID == uuid.Nil {
		return nil, apperrors.Validation("invalid user ID")
	}
	if review.VenueID == uuid.Nil {
		return nil, apperrors.Validation("invalid venue ID")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}

	// The review must point at a venue that actually exists.
	if _, err := rs.venuesRepo.GetVenueByID(ctx, review.VenueID); err != nil {
		return nil, err
	}

	created, err := rs.reviewsRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, apperrors.Persistence("failed to create review", err)
	}
	return created, nil
}

func (rs *ReviewService) GetReviewsByVenue(ctx context.Context, venueId uuid.UUID, limit int) ([]*models.VenueReview, error) {
	if venueId == uuid.Nil {
		return nil, apperrors.Validation("invalid venue ID")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	reviews, err := rs.reviewsRepo.GetReviewsByVenue(ctx, venueId, limit)
	if err != nil {
		return nil, apperrors.Persistence("failed to fetch reviews", err)
	}
	return reviews, nil
}

func (rs *ReviewService) DeleteReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID) error {
	if userId == uuid.Nil {
		return apperrors.Validation("invalid user ID")
	}
	if reviewId.IsZero() {
		return apperrors.Validation("invalid review ID")
	}

	return rs.reviewsRepo.DeleteReview(ctx, userId, reviewId)
}
