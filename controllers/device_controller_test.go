package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDeviceEndpointsWithoutPushConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dc := NewDeviceController(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/devices",
		strings.NewReader(`{"platform":"android","token":"tok"}`))
	dc.Register(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "push notifications unavailable")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/devices/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	dc.Remove(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
