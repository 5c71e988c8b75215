package routes

import (
	"purpoise-api/internal/handlers"
	"purpoise-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Purpoise API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Goal endpoints (tree fetch runs the lazy recurrence reset pass)
		protectedRoutes.GET("/goals", handlers.GetGoals)
		protectedRoutes.POST("/goals", handlers.CreateGoal)
		protectedRoutes.GET("/goals/:id", handlers.GetGoalByID)
		protectedRoutes.PUT("/goals/:id", handlers.UpdateGoal)
		protectedRoutes.PATCH("/goals/:id/rag", handlers.UpdateGoalRAG)
		protectedRoutes.DELETE("/goals/:id", handlers.DeleteGoal)
		protectedRoutes.GET("/goals/:id/stats", handlers.GetGoalStats)
		protectedRoutes.POST("/goals/:id/stages", handlers.AddStage)
		// Stage endpoints
		protectedRoutes.PUT("/stages/:id", handlers.UpdateStage)
		protectedRoutes.DELETE("/stages/:id", handlers.DeleteStage)
		protectedRoutes.POST("/stages/:id/tasks", handlers.CreateTask)
		// Task endpoints
		protectedRoutes.PUT("/tasks/:id", handlers.UpdateTask)
		protectedRoutes.PATCH("/tasks/:id/toggle", handlers.ToggleTask)
		protectedRoutes.DELETE("/tasks/:id", handlers.DeleteTask)
		// Recurring reset (same pass the tree fetch runs)
		protectedRoutes.POST("/recurring/reset", handlers.ResetRecurring)
		// Dashboard endpoints
		protectedRoutes.GET("/dashboard/digest", handlers.GetWeeklyDigest)
		protectedRoutes.GET("/tarot/daily", handlers.GetDailyTarot)
		protectedRoutes.POST("/tagging/classify", handlers.ClassifyContent)
		// Current user + realtime
		protectedRoutes.GET("/me", handlers.GetCurrentUser)
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
