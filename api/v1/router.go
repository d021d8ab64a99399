package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/config"
	"github.com/innovatehub-portal/middleware"
	"github.com/innovatehub-portal/services"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	awardService := services.NewAwardService(db)
	projectService := services.NewProjectService(db)
	evaluationService := services.NewEvaluationService(db)
	rankingService := services.NewRankingService(db)

	authController := NewAuthController(authService)
	userController := NewUserController(userService)
	awardController := NewAwardController(awardService)
	projectController := NewProjectController(projectService, rankingService)
	evaluationController := NewEvaluationController(evaluationService)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(authService), authController.GetCurrentUser)
	}

	// Award endpoints - listing and lookup are public, mutations admin only
	awardGroup := router.Group("/awards")
	{
		awardGroup.GET("", awardController.ListActive)
		awardGroup.GET("/:id", awardController.GetAward)

		adminAwards := awardGroup.Group("")
		adminAwards.Use(middleware.AuthMiddleware(authService), middleware.AdminMiddleware())
		{
			adminAwards.POST("", awardController.CreateAward)
			adminAwards.PUT("/:id", awardController.UpdateAward)
			adminAwards.DELETE("/:id", awardController.DeleteAward)
		}
	}

	// User endpoints - protected by AuthMiddleware
	userGroup := router.Group("")
	userGroup.Use(middleware.AuthMiddleware(authService))
	{
		userGroup.GET("/users/:id", userController.GetUser)
		userGroup.PUT("/users/:id", userController.UpdateUser)
		userGroup.DELETE("/users/:id", middleware.AdminMiddleware(), userController.DeleteUser)
		userGroup.GET("/authors", userController.ListAuthors)
		userGroup.GET("/evaluators", userController.ListEvaluators)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware(authService))
	{
		projectGroup.GET("", projectController.ListProjects)
		projectGroup.POST("", projectController.CreateProject)
		projectGroup.GET("/not-evaluated", projectController.ListNotEvaluated)
		projectGroup.GET("/evaluated", projectController.ListEvaluated)
		projectGroup.GET("/winners", projectController.ListWinners)
		projectGroup.GET("/:id", projectController.GetProject)
		projectGroup.PUT("/:id", projectController.UpdateProject)
		projectGroup.DELETE("/:id", projectController.DeleteProject)
	}

	// Evaluation endpoints - protected by AuthMiddleware
	evaluationGroup := router.Group("/evaluations")
	evaluationGroup.Use(middleware.AuthMiddleware(authService))
	{
		evaluationGroup.GET("", evaluationController.ListEvaluations)
		evaluationGroup.POST("", evaluationController.SubmitEvaluation)
		evaluationGroup.GET("/mine", evaluationController.ListMyEvaluations)
		evaluationGroup.GET("/:id", evaluationController.GetEvaluation)
		evaluationGroup.PUT("/:id", evaluationController.UpdateEvaluation)
		evaluationGroup.DELETE("/:id", evaluationController.DeleteEvaluation)
	}

	// Admin endpoints
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(authService), middleware.AdminMiddleware())
	{
		adminGroup.POST("/recompute-winners", projectController.RecomputeWinners)
	}
}
