package controllers

import (
	"net/http"

	"github.com/AshwinRamana/life-tracking-app/models"
	"github.com/AshwinRamana/life-tracking-app/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Health *services.HealthService
}

func NewHealthController(health *services.HealthService) *HealthController {
	return &HealthController{Health: health}
}

// Pointer fields so "not sent" and "sent as zero" stay distinguishable;
// omitted fields leave the stored values untouched.
type HealthInput struct {
	Steps        *int     `json:"steps"`
	SleepHours   *float64 `json:"sleepHours"`
	SleepMinutes *int     `json:"sleepMinutes"`
	Weight       *float64 `json:"weight"`
	WaterIntake  *int     `json:"waterIntake"`
}

func (h *HealthController) Upsert(c *gin.Context) {
	userID := c.GetUint("userID")

	var input HealthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	log, err := h.Health.Upsert(userID, services.HealthUpdate{
		Steps:        input.Steps,
		SleepHours:   input.SleepHours,
		SleepMinutes: input.SleepMinutes,
		Weight:       input.Weight,
		WaterIntake:  input.WaterIntake,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": log})
}

func (h *HealthController) Today(c *gin.Context) {
	userID := c.GetUint("userID")

	log, err := h.Health.Today(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if log == nil {
		log = &models.HealthLog{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": log})
}
