package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"festa/internal/models"
	"festa/internal/services"
)

const dateLayout = "2006-01-02"

func CreateVenueHandler(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if !claims.IsHost() && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("FORBIDDEN", "only users with host role can create venues"))
			return
		}

		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		hostId, err := claims.ParsedUserID()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid user ID in token"))
			return
		}

		created, err := v.CreateVenue(c.Request.Context(), &venue, hostId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "venue created successfully"))
	}
}

func ListVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := pageParams(c)
		if !ok {
			return
		}

		venues, total, err := v.ListVenues(c.Request.Context(), offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(venues, models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		}))
	}
}

func GetVenueByID(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}

		venue, err := v.GetVenueByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func UpdateVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}

		venue, err := v.GetVenueByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		if venue.HostID.String() != claims.UserID && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("FORBIDDEN", "you can only update your own venues"))
			return
		}

		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		updated, err := v.UpdateVenue(c.Request.Context(), id, updates)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "venue updated successfully"))
	}
}

func DeleteVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}

		venue, err := v.GetVenueByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		if venue.HostID.String() != claims.UserID && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("FORBIDDEN", "you can only delete your own venues"))
			return
		}

		if err := v.DeleteVenue(c.Request.Context(), venue.HostID, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "venue deleted successfully"))
	}
}

func ListVenuesByHost(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hostId, ok := uuidParam(c, "host_id")
		if !ok {
			return
		}
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if !claims.IsOwner(hostId.String()) && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("FORBIDDEN", "unauthorized access"))
			return
		}

		offset, limit, ok := pageParams(c)
		if !ok {
			return
		}

		venues, total, err := v.ListVenuesByHost(c.Request.Context(), hostId, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(venues, models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		}))
	}
}

// SearchVenues handles
// GET /venues/search?budget&capacity&location&radius&start_date&end_date&page&limit.
func SearchVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters models.VenueSearchFilters

		if raw := c.Query("budget"); raw != "" {
			budget, err := strconv.ParseFloat(raw, 64)
			if err != nil || budget < 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid budget parameter"))
				return
			}
			filters.Budget = budget
		}
		if raw := c.Query("capacity"); raw != "" {
			capacity, err := strconv.Atoi(raw)
			if err != nil || capacity < 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid capacity parameter"))
				return
			}
			filters.Capacity = capacity
		}
		filters.Location = c.Query("location")
		if raw := c.Query("radius"); raw != "" {
			radius, err := strconv.ParseFloat(raw, 64)
			if err != nil || radius <= 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid radius parameter"))
				return
			}
			filters.RadiusKm = radius
		}
		if raw := c.Query("start_date"); raw != "" {
			start, err := time.Parse(dateLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid start_date, expected YYYY-MM-DD"))
				return
			}
			filters.StartDate = start
		}
		if raw := c.Query("end_date"); raw != "" {
			end, err := time.Parse(dateLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid end_date, expected YYYY-MM-DD"))
				return
			}
			filters.EndDate = end
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		results, pagination, err := v.SearchVenues(c.Request.Context(), filters, page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(results, pagination))
	}
}
