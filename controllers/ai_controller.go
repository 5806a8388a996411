package controllers

import (
	"net/http"

	"github.com/AshwinRamana/life-tracking-app/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	Chat    *services.ChatService
	Summary *services.SummaryService
}

func NewAIController(chat *services.ChatService, summary *services.SummaryService) *AIController {
	return &AIController{Chat: chat, Summary: summary}
}

type ChatInput struct {
	Message string `json:"message"`
}

// HandleChat never returns an AI failure to the caller: a degraded
// round still answers 200 with the canned reply and isMock set.
func (a *AIController) HandleChat(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := a.Chat.HandleMessage(c.Request.Context(), userID, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"reply":    result.Reply,
		"actions":  result.Actions,
		"statuses": result.Statuses,
		"isMock":   result.Mock,
	})
}

func (a *AIController) DailySummary(c *gin.Context) {
	userID := c.GetUint("userID")

	result, err := a.Summary.GenerateToday(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"data":           result.Summary,
		"suggestedMood":  result.SuggestedMood,
		"suggestedFocus": result.SuggestedFocus,
		"isMock":         result.Mock,
	})
}
