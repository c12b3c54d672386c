package controllers

import (
	"net/http"

	"github.com/Calorties/calorties-api/apperror"

	"github.com/gin-gonic/gin"
)

// respondError maps an error to its HTTP status and JSON payload.
func respondError(c *gin.Context, err error) {
	if ae, ok := apperror.FromError(err); ok {
		c.JSON(ae.StatusCode(), gin.H{"error": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
