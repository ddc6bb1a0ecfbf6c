package routes

import (
	"log"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/controllers"
	"github.com/ram2117/Nutri-Track/middlewares"
	"github.com/ram2117/Nutri-Track/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(keys config.KeyStore) *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}

	reminderSvc := services.NewReminderService(config.DB, hub, push)
	reminderCtl := controllers.NewReminderController(reminderSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)
	mealCtl := controllers.NewMealController(services.NewVisionService(keys))
	settingsCtl := controllers.NewSettingsController(keys)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Session required, profile not yet: the profile-setup surface.
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/has-profile", controllers.HasProfile)
		user.POST("/profile", controllers.CreateProfile)
		user.GET("/profile", controllers.GetProfile)
		user.GET("/settings", settingsCtl.GetSettings)
		user.PUT("/settings", settingsCtl.UpdateSettings)
	}

	// Session and profile required: the tracking surface.
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(), middlewares.RequireProfile())
	{
		api.POST("/meals/analyze", mealCtl.Analyze)
		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)

		api.POST("/water", controllers.AddWater)
		api.GET("/water", controllers.ListWaterToday)
		api.DELETE("/water/:id", controllers.DeleteWater)

		api.GET("/reminders", reminderCtl.List)
		api.POST("/reminders", reminderCtl.Create)
		api.PUT("/reminders/:id", reminderCtl.Update)
		api.DELETE("/reminders/:id", reminderCtl.Delete)

		api.GET("/dashboard", controllers.GetDashboard)
		api.GET("/history/water", controllers.GetWaterHistory)
		api.GET("/history/nutrition", controllers.GetNutritionHistory)

		api.GET("/ws/reminders", realtimeCtl.RemindersWS)

		deviceCtl := controllers.NewDeviceController(push)
		api.POST("/devices", deviceCtl.Register)
		api.DELETE("/devices/:id", deviceCtl.Remove)
	}

	return r
}
