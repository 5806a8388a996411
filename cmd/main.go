package main

import (
	"log"
	"os"

	"github.com/AshwinRamana/life-tracking-app/config"
	"github.com/AshwinRamana/life-tracking-app/controllers"
	"github.com/AshwinRamana/life-tracking-app/routes"
	"github.com/AshwinRamana/life-tracking-app/services"
	"github.com/AshwinRamana/life-tracking-app/utils"
)

func main() {
	db := config.InitDB()
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("Redis not configured, AI rate limiting disabled")
	}

	mailer, err := utils.NewMailer()
	if err != nil {
		log.Printf("SES unavailable, password-reset emails disabled: %v", err)
		mailer = nil
	}

	// stores
	foodSvc := services.NewFoodService(db)
	healthSvc := services.NewHealthService(db)
	journalSvc := services.NewJournalService(db)
	activitySvc := services.NewActivityLogService(db)
	goalSvc := services.NewGoalService(db)
	authSvc := services.NewAuthService(db, mailer)

	// AI pipeline
	hub := services.NewRealtimeHub()
	ai := services.NewProviderChainFromEnv()
	contextBuilder := services.NewContextBuilder(activitySvc, foodSvc, healthSvc, journalSvc)
	sink := services.NewStoreSink(foodSvc, activitySvc, journalSvc, goalSvc, healthSvc)
	dispatcher := services.NewDispatcher(sink, hub)
	chatSvc := services.NewChatService(contextBuilder, ai, dispatcher)
	summarySvc := services.NewSummaryService(db, contextBuilder, ai)

	r := routes.SetupRouter(routes.Deps{
		Auth:       controllers.NewAuthController(authSvc),
		Food:       controllers.NewFoodController(foodSvc, chatSvc),
		Health:     controllers.NewHealthController(healthSvc),
		Journal:    controllers.NewJournalController(journalSvc),
		Activities: controllers.NewActivityLogController(activitySvc),
		Goals:      controllers.NewGoalController(goalSvc),
		AI:         controllers.NewAIController(chatSvc, summarySvc),
		Realtime:   controllers.NewRealtimeController(hub),
		Redis:      rdb,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
