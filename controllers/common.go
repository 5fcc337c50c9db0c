package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/thats-dominik/athlena/services"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is logged and surfaced as an opaque 500.
func handleServiceError(c *gin.Context, err error) {
	var missingFields *services.MissingFieldsError
	var invalidAI *services.InvalidAIResponseError

	switch {
	case errors.Is(err, services.ErrMissingInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input data"})
	case errors.As(err, &missingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": missingFields.Error()})
	case errors.As(err, &invalidAI):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":       "Invalid AI response format",
			"rawResponse": invalidAI.Raw,
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
