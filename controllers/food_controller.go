package controllers

import (
	"net/http"

	"github.com/AshwinRamana/life-tracking-app/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Food *services.FoodService
	Chat *services.ChatService // calorie estimation
}

func NewFoodController(food *services.FoodService, chat *services.ChatService) *FoodController {
	return &FoodController{Food: food, Chat: chat}
}

type LogFoodInput struct {
	MealType string `json:"mealType"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

func (f *FoodController) LogFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input LogFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	day, err := f.Food.AddItem(userID, input.MealType, input.Name, input.Calories)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": day})
}

func (f *FoodController) Today(c *gin.Context) {
	userID := c.GetUint("userID")

	day, err := f.Food.Today(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if day == nil {
		// Empty shape rather than null so the dashboard renders clean.
		day = services.EmptyFoodDay()
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": day})
}

type EstimateInput struct {
	FoodName string `json:"foodName"`
}

func (f *FoodController) Estimate(c *gin.Context) {
	var input EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.FoodName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Food name is required"})
		return
	}

	calories, mock := f.Chat.EstimateCalories(c.Request.Context(), input.FoodName)
	c.JSON(http.StatusOK, gin.H{"success": true, "calories": calories, "isMock": mock})
}
