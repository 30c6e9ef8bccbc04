package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/models"
	"festa/internal/services"
)

func CreateEvent(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		organizerId, err := claims.ParsedUserID()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", "invalid user ID in token"))
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		created, err := e.CreateEvent(c.Request.Context(), &event, organizerId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "event created successfully"))
	}
}

func GetEventByID(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}

		event, err := e.GetEventByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

// ListEvents returns public events; admins see private ones too.
func ListEvents(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := pageParams(c)
		if !ok {
			return
		}

		publicOnly := true
		if claims, exists := c.Get("user"); exists {
			if parsed, ok := claims.(interface{ IsAdmin() bool }); ok && parsed.IsAdmin() {
				publicOnly = false
			}
		}

		events, total, err := e.ListEvents(c.Request.Context(), publicOnly, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events, models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		}))
	}
}
