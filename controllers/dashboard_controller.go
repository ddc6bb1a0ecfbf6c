package controllers

import (
	"net/http"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/services"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	summary, err := services.NewDashboardService(config.DB).Summary(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
