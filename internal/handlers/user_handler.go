package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festa/internal/models"
	"festa/internal/services"
)

func GetUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if !claims.IsOwner(id.String()) && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("FORBIDDEN", "you can only view your own profile"))
			return
		}

		user, err := u.GetUser(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

func UpdateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if !claims.IsOwner(id.String()) && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("FORBIDDEN", "you can only update your own profile"))
			return
		}

		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		user, err := u.UpdateUser(c.Request.Context(), id, updates)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "profile updated"))
	}
}

func DeleteUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if !claims.IsOwner(id.String()) && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("FORBIDDEN", "you can only delete your own account"))
			return
		}

		if err := u.DeleteUser(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "account deleted"))
	}
}
