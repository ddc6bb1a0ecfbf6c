package controllers

import (
	"net/http"
	"time"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/services"

	"github.com/gin-gonic/gin"
)

func historyRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, end, err := services.DateRange(
		c.Query("range"), c.Query("start"), c.Query("end"), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func GetWaterHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	start, end, ok := historyRange(c)
	if !ok {
		return
	}

	resp, err := services.NewHistoryService(config.DB).Water(uid, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func GetNutritionHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	start, end, ok := historyRange(c)
	if !ok {
		return
	}

	metric := c.DefaultQuery("metric", "calories")
	resp, err := services.NewHistoryService(config.DB).Nutrition(uid, metric, start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
