package controllers

import (
	"net/http"
	"time"

	"github.com/AshwinRamana/life-tracking-app/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (g *GoalController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := g.Goals.ListOpen(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": goals})
}

type GoalInput struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate"` // date-only, e.g. "2025-12-24"
}

func (g *GoalController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	due, err := time.Parse("2006-01-02", input.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid due date"})
		return
	}

	goal, err := g.Goals.Create(userID, input.Title, due)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": goal})
}

type GoalPatchInput struct {
	GoalID    uint `json:"goalId"`
	Completed bool `json:"completed"`
}

func (g *GoalController) Patch(c *gin.Context) {
	userID := c.GetUint("userID")

	var input GoalPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	goal, err := g.Goals.SetCompleted(userID, input.GoalID, input.Completed)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": goal})
}
