// controllers/settings.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicegen-backend/models"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"
)

type ThemeInput struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

type SettingsController struct {
	Store services.SnapshotStore
}

func NewSettingsController(store services.SnapshotStore) *SettingsController {
	return &SettingsController{Store: store}
}

// GetTheme returns the saved theme preference, defaulting to light.
func (sc *SettingsController) GetTheme(c *gin.Context) {
	theme, found, err := sc.Store.Load(c.Request.Context(), models.ThemeKey)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	if !found {
		theme = "light"
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme stores the theme preference.
func (sc *SettingsController) SetTheme(c *gin.Context) {
	var input ThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Theme must be \"light\" or \"dark\"")
		return
	}

	if err := sc.Store.Save(c.Request.Context(), models.ThemeKey, input.Theme); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": input.Theme})
}
