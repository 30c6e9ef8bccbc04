package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"festa/internal/apperrors"
	"festa/internal/helpers"
	"festa/internal/models"
)

// respondError maps any service error onto the response envelope.
func respondError(c *gin.Context, err error) {
	ae := apperrors.From(err)
	c.JSON(ae.StatusCode(), models.ErrorResponse(ae.Code, ae.Message))
}

// claimsFrom pulls the authenticated claims from the gin context; writes
// the error response itself when absent.
func claimsFrom(c *gin.Context) (*helpers.Claims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(apperrors.CodeUnauthorized, "unauthorized"))
		return nil, false
	}
	claims, ok := userClaims.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(apperrors.CodeInternal, "invalid user claims"))
		return nil, false
	}
	return claims, true
}

// uuidParam parses a path parameter as a UUID, tolerating stray quotes from
// clients that pass JSON strings.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := strings.Trim(strings.TrimSpace(c.Param(name)), "\"'")
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(apperrors.CodeValidation, name+" is required"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(apperrors.CodeValidation, "invalid "+name+" format"))
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads offset/limit-style pagination from the query string.
func pageParams(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(apperrors.CodeValidation, "invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(apperrors.CodeValidation, "invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}
