package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medblog/dto"
	"medblog/services"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterHandler godoc
// @Summary      Register an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.UserProfile
// @Router       /register [post]
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
			return
		}

		user, err := svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered",
			"user":    dto.UserProfileFromModel(user),
		})
	}
}

// LoginHandler godoc
// @Summary      Log in and receive a bearer token
// @Description  The token carries {userId, email} claims and expires after one hour
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Router       /login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		token, user, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.LoginResponse{
			Token:  token,
			UserID: user.ID.Hex(),
			Email:  user.Email,
		})
	}
}

// ForgotPasswordHandler godoc
// @Summary      Request a password reset mail
// @Tags         auth
// @Accept       json
// @Produce      json
// @Router       /forgot-password [post]
func ForgotPasswordHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req forgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		if err := svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
			if statusForError(err) == http.StatusNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending reset email"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
	}
}

// ResetPasswordHandler completes the reset flow with the emailed token.
func ResetPasswordHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
			return
		}

		if err := svc.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
