package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/services"
	"github.com/ram2117/Nutri-Track/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddWaterInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Unit   string  `json:"unit" binding:"required,oneof=ml oz"`
}

func AddWater(c *gin.Context) {
	uid := c.GetUint("userID")

	var input AddWaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, created, err := services.NewWaterService(config.DB).AddEntry(uid, input.Amount, input.Unit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	status := http.StatusCreated
	if !created {
		// Duplicate submission inside the guard window.
		status = http.StatusOK
	}
	c.JSON(status, entry)
}

func ListWaterToday(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewWaterService(config.DB)
	entries, err := svc.ListToday(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	settings, err := services.NewSettingsService(config.DB).GetOrCreate(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total := services.TotalML(entries)
	c.JSON(http.StatusOK, gin.H{
		"entries":  entries,
		"total_ml": total,
		"goal_ml":  settings.DailyWaterGoal,
		"percent":  utils.ProgressPercent(total, settings.DailyWaterGoal),
	})
}

func DeleteWater(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.NewWaterService(config.DB).Delete(uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
