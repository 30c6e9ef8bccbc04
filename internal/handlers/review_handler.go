package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"festa/internal/models"
	"festa/internal/services"
)

func CreateReview(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		userId, err := claims.ParsedUserID()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid user ID in token"))
			return
		}

		var review models.VenueReview
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}
		review.UserID = userId
		review.VenueID = venueId

		created, err := r.CreateReview(c.Request.Context(), &review)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "review created"))
	}
}

func ListVenueReviews(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, ok := uuidParam(c, "id")
		if !ok {
			return
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid limit parameter"))
			return
		}

		reviews, err := r.GetReviewsByVenue(c.Request.Context(), venueId, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(reviews, ""))
	}
}
