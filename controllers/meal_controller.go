package controllers

import (
	"net/http"
	"time"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Vision *services.VisionService
}

func NewMealController(vision *services.VisionService) *MealController {
	return &MealController{Vision: vision}
}

type AnalyzeInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// Analyze proxies the captured frame to the vision endpoint. The
// response always carries a nutrition record; "analyzed" is false when
// it is the fallback so the client can surface a notification.
func (mc *MealController) Analyze(c *gin.Context) {
	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nutrition, analyzed := mc.Vision.Analyze(c.Request.Context(), input.ImageBase64)
	c.JSON(http.StatusOK, gin.H{"nutrition": nutrition, "analyzed": analyzed})
}

func (mc *MealController) LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MealEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.NewMealService(config.DB).AddEntry(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entries, err := services.NewMealService(config.DB).ListByDate(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
