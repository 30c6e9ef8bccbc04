package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"festa/internal/helpers"
	"festa/internal/models"
	"festa/internal/services"
)

func isProduction() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}

func CreateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		created, err := u.CreateUser(c.Request.Context(), &user)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "account created successfully"))
	}
}

func AuthenticateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("VALIDATION_ERROR", err.Error()))
			return
		}

		user, token, err := u.AuthenticateUser(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.SetCookie(
			"access_token",
			token,
			int(helpers.AccessTokenTTL.Seconds()),
			"/",
			"", // current domain
			isProduction(),
			true,
		)
		c.JSON(http.StatusOK, models.SuccessResponse(user, "login successful"))
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("access_token", "", -1, "/", "", isProduction(), true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "logged out"))
	}
}

func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"user_id":  claims.UserID,
			"email":    claims.Email,
			"username": claims.Username,
			"role":     claims.Role,
			"is_admin": claims.IsAdmin(),
		})
	}
}
