package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/models"
	"festa/internal/services"
)

// BookVenue handles POST /venues/:id/book.
func BookVenue(b *services.BookingService) gin.HandlerFunc {
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

		var req services.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		detail, err := b.CreateBooking(c.Request.Context(), venueId, userId, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(detail, "booking confirmed"))
	}
}

func GetBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId, ok := uuidParam(c, "id")
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

		detail, err := b.GetBooking(c.Request.Context(), bookingId, userId, claims.IsAdmin())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(detail, ""))
	}
}

func ListMyBookings(b *services.BookingService) gin.HandlerFunc {
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

		offset, limit, ok := pageParams(c)
		if !ok {
			return
		}

		bookings, total, err := b.ListBookingsByUser(c.Request.Context(), userId, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(bookings, models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		}))
	}
}

func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId, ok := uuidParam(c, "id")
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

		if err := b.CancelBooking(c.Request.Context(), bookingId, userId, claims.IsAdmin()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "booking canceled"))
	}
}
