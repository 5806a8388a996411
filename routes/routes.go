package routes

import (
	"time"

	"github.com/AshwinRamana/life-tracking-app/controllers"
	"github.com/AshwinRamana/life-tracking-app/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Deps struct {
	Auth       *controllers.AuthController
	Food       *controllers.FoodController
	Health     *controllers.HealthController
	Journal    *controllers.JournalController
	Activities *controllers.ActivityLogController
	Goals      *controllers.GoalController
	AI         *controllers.AIController
	Realtime   *controllers.RealtimeController
	Redis      *redis.Client // nil disables AI rate limiting
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/signup", d.Auth.Signup)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/forgot-password", d.Auth.ForgotPassword)
		auth.POST("/reset-password", d.Auth.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/food", d.Food.LogFood)
		api.GET("/food/today", d.Food.Today)

		api.POST("/health", d.Health.Upsert)
		api.GET("/health/today", d.Health.Today)

		api.POST("/journal", d.Journal.Append)
		api.GET("/journal/today", d.Journal.Today)

		api.POST("/logs", d.Activities.Create)
		api.GET("/logs/today", d.Activities.Today)

		api.GET("/goals", d.Goals.List)
		api.POST("/goals", d.Goals.Create)
		api.PATCH("/goals", d.Goals.Patch)

		api.GET("/ws", d.Realtime.EventsWS)

		ai := api.Group("/")
		ai.Use(middlewares.RateLimit(d.Redis, 20, time.Minute))
		{
			ai.POST("/ai/chat", d.AI.HandleChat)
			ai.POST("/ai/daily-summary", d.AI.DailySummary)
			ai.POST("/food/estimate", d.Food.Estimate)
		}
	}

	return r
}
