package main

import (
	"log"

	"purpoise-api/internal/config"
	"purpoise-api/internal/database"
	"purpoise-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database.InitDB(cfg.DBPath)

	ginRoutes := routes.SetupRoutes()

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/goals")
	log.Println("  POST   /api/goals")
	log.Println("  PATCH  /api/tasks/:id/toggle")
	log.Println("  POST   /api/recurring/reset")
	log.Println("  GET    /api/dashboard/digest")
	log.Println("  GET    /api/tarot/daily")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
