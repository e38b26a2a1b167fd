package routes

import (
	"referral-api/api/handlers"
	"referral-api/api/middleware"
	"referral-api/internal/referral"
	"referral-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, logger *logger.Logger, service referral.Service) {
	// Add middleware
	router.Use(middleware.RequestLogging(logger))
	router.Use(gin.Recovery())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, logger)
	userHandler := handlers.NewUserHandler(service, logger)
	referralHandler := handlers.NewReferralHandler(service, logger)

	// Setup routes
	users := router.Group("/users")
	{
		users.POST("/", userHandler.CreateUser)
		users.GET("/:tg_id", userHandler.GetUser)
		users.GET("/:tg_id/friends", userHandler.GetFriends)
		users.GET("/:tg_id/referral_link", userHandler.GetReferralLink)
		users.GET("/:tg_id/total_points", userHandler.GetTotalPoints)
	}

	router.POST("/referrals/", referralHandler.CreateReferral)

	router.GET("/health", healthHandler.Check)
}
