package controllers

import (
	"errors"
	"net/http"

	"github.com/AshwinRamana/life-tracking-app/services"

	"github.com/gin-gonic/gin"
)

// respondError maps store rejections to 400 and everything else to 500.
func respondError(c *gin.Context, err error) {
	var rejected *services.RejectedError
	if errors.As(err, &rejected) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": rejected.Reason})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}
