package controllers

import (
	"errors"
	"net/http"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/services"

	"github.com/gin-gonic/gin"
)

// HasProfile backs post-login routing: no profile means the client
// sends the user to profile setup.
func HasProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	has, err := services.NewProfileService(config.DB).HasProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_profile": has})
}

func CreateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.NewProfileService(config.DB).Create(uid, input)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := services.NewProfileService(config.DB).Get(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
