// controllers/reminders.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicegen-backend/config"
	"invoicegen-backend/models"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"
)

type RemindersController struct {
	Service *services.ReminderService
}

func NewRemindersController(service *services.ReminderService) *RemindersController {
	return &RemindersController{Service: service}
}

// GetReminderLogs lists the most recent reminder attempts.
func (rc *RemindersController) GetReminderLogs(c *gin.Context) {
	var logs []models.ReminderLog
	if err := config.DB.Order("sent_at DESC").Limit(50).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// RunReminders triggers a reminder check outside the daily schedule.
func (rc *RemindersController) RunReminders(c *gin.Context) {
	rc.Service.Run(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Reminder check completed"})
}
