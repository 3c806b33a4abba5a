package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medblog/services"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateContactHandler godoc
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Router       /contact [post]
func CreateContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		saved, err := svc.Create(c.Request.Context(), req.Name, req.Email, req.Message)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Message received",
			"contact": saved,
		})
	}
}
