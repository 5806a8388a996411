package controllers

import (
	"net/http"

	"github.com/AshwinRamana/life-tracking-app/models"
	"github.com/AshwinRamana/life-tracking-app/services"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	Journal *services.JournalService
}

func NewJournalController(journal *services.JournalService) *JournalController {
	return &JournalController{Journal: journal}
}

type JournalInput struct {
	Content string `json:"content"`
}

func (j *JournalController) Append(c *gin.Context) {
	userID := c.GetUint("userID")

	var input JournalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	journal, err := j.Journal.Append(userID, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": journal})
}

func (j *JournalController) Today(c *gin.Context) {
	userID := c.GetUint("userID")

	journal, err := j.Journal.Today(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if journal == nil {
		journal = &models.JournalLog{Entries: []models.JournalEntry{}}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": journal})
}
