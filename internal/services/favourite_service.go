package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"festa/internal/apperrors"
	"festa/internal/models"
)

type FavouriteService struct {
	favouritesRepo models.FavouriteRepo
}

func NewFavouriteService(favouritesRepo models.FavouriteRepo) *FavouriteService {
	return &FavouriteService{
		favouritesRepo: favouritesRepo,
	}
}

func (fs *FavouriteService) AddToFavourites(ctx context.Context, userId uuid.UUID, itemId string, itemType string) (*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, apperrors.Validation("invalid user ID")
	}
	if strings.TrimSpace(itemId) == "" {
		return nil, apperrors.Validation("item ID cannot be empty")
	}
	if itemType != "venue" && itemType != "event" {
		return nil, apperrors.Validation("item type must be either 'venue' or 'event'")
	}

	return fs.favouritesRepo.AddToFavourites(ctx, userId, itemId, itemType)
}

func (fs *FavouriteService) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, itemId string) error {
	if userId == uuid.Nil {
		return apperrors.Validation("invalid user ID")
	}
	if strings.TrimSpace(itemId) == "" {
		return apperrors.Validation("item ID cannot be empty")
	}

	return fs.favouritesRepo.RemoveFromFavourites(ctx, userId, itemId)
}

func (fs *FavouriteService) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) ([]*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, apperrors.Validation("invalid user ID")
	}

	return fs.favouritesRepo.GetFavouritesByUserID(ctx, userId)
}
