package controllers

import (
	"net/http"

	"github.com/AshwinRamana/life-tracking-app/services"

	"github.com/gin-gonic/gin"
)

type ActivityLogController struct {
	Activities *services.ActivityLogService
}

func NewActivityLogController(activities *services.ActivityLogService) *ActivityLogController {
	return &ActivityLogController{Activities: activities}
}

type ActivityInput struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Time     string `json:"time"`
}

func (a *ActivityLogController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	log, err := a.Activities.Create(userID, input.Category, input.Title, input.Time)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": log})
}

func (a *ActivityLogController) Today(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := a.Activities.Today(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(logs), "data": logs})
}
