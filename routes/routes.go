package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"invoicegen-backend/config"
	"invoicegen-backend/controllers"
	"invoicegen-backend/services"
)

func SetupRouter(store services.SnapshotStore, reminders *services.ReminderService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	invoiceController := controllers.NewInvoiceController(store)
	exportController := controllers.NewExportController(store, services.NewPDFService())
	settingsController := controllers.NewSettingsController(store)
	remindersController := controllers.NewRemindersController(reminders)

	api := r.Group("/api")
	{
		invoice := api.Group("/invoice")
		{
			invoice.GET("", invoiceController.GetInvoice)
			invoice.PUT("", invoiceController.ReplaceInvoice)
			invoice.POST("/reset", invoiceController.ResetInvoice)
			invoice.GET("/totals", invoiceController.GetTotals)
			invoice.POST("/logo", exportController.UploadLogo)

			items := invoice.Group("/items")
			{
				items.POST("", invoiceController.AddItem)
				items.PUT("/:id", invoiceController.UpdateItem)
				items.DELETE("/:id", invoiceController.RemoveItem)
			}
		}

		api.GET("/export/json", exportController.ExportJSON)
		api.GET("/export/pdf", exportController.ExportPDF)
		api.POST("/import/json", exportController.ImportJSON)

		settings := api.Group("/settings")
		{
			settings.GET("/theme", settingsController.GetTheme)
			settings.PUT("/theme", settingsController.SetTheme)
		}

		reminderRoutes := api.Group("/reminders")
		{
			reminderRoutes.GET("", remindersController.GetReminderLogs)
			reminderRoutes.POST("/run", remindersController.RunReminders)
		}
	}

	return r
}
