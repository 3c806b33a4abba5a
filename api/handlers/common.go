package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medblog/services"
)

// statusForError maps service error kinds to HTTP statuses. Login and
// duplicate-email failures are 400 by this API's convention.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}
