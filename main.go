package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"invoicegen-backend/config"
	"invoicegen-backend/models"
	"invoicegen-backend/routes"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := utils.InitLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")); err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Snapshot{},
		&models.ReminderLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := services.NewDBStore(config.DB, os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))
	reminders := services.NewReminderService(config.DB, store)
	reminders.StartScheduler()

	r := routes.SetupRouter(store, reminders)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
