package controllers

import (
	"net/http"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Keys config.KeyStore
}

func NewSettingsController(keys config.KeyStore) *SettingsController {
	return &SettingsController{Keys: keys}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	settings, err := services.NewSettingsService(config.DB).GetOrCreate(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		DailyWaterGoal *float64 `json:"daily_water_goal"`
		APIKey         *string  `json:"api_key"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.APIKey != nil {
		if err := sc.Keys.Set(*input.APIKey); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist API key"})
			return
		}
	}

	svc := services.NewSettingsService(config.DB)
	if input.DailyWaterGoal != nil {
		if *input.DailyWaterGoal <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "daily_water_goal must be positive"})
			return
		}
		settings, err := svc.UpdateWaterGoal(uid, *input.DailyWaterGoal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, settings)
		return
	}

	settings, err := svc.GetOrCreate(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
