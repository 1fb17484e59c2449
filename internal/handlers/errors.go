package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/services"
)

// respondError maps service errors onto status codes. Every violation is
// returned at once so the editor can show them in a single pass.
func respondError(c *gin.Context, err error, warnings []formschema.Warning) {
	if verrs, ok := formschema.AsValidationErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Schema validation failed",
			"violations": verrs,
			"warnings":   warnings,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden), errors.Is(err, formschema.ErrNotPermitted):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrTemplateExists):
		status = http.StatusConflict
	case errors.Is(err, formschema.ErrFieldNotFound),
		errors.Is(err, formschema.ErrIndexOutOfRange),
		errors.Is(err, formschema.ErrNotAGroup):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrLLMDisabled):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
}
