package handlers

import (
	"errors"
	"net/http"

	"fruitbasket-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	DB *gorm.DB
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	var settings models.WebsiteSettings
	if err := h.DB.WithContext(c.Request.Context()).First(&settings, models.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Website settings not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
