package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/models"
	"festa/internal/services"
)

func AddToFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		userId, err := claims.ParsedUserID()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid user ID in token"))
			return
		}

		var body struct {
			ItemID   string `json:"item_id"`
			ItemType string `json:"item_type"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		fav, err := f.AddToFavourites(c.Request.Context(), userId, body.ItemID, body.ItemType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(fav, "added to favourites"))
	}
}

func RemoveFromFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		userId, err := claims.ParsedUserID()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid user ID in token"))
			return
		}

		itemId := c.Param("item_id")
		if err := f.RemoveFromFavourites(c.Request.Context(), userId, itemId); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "removed from favourites"))
	}
}

func ListFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		userId, err := claims.ParsedUserID()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid user ID in token"))
			return
		}

		favs, err := f.GetFavouritesByUserID(c.Request.Context(), userId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(favs, ""))
	}
}
