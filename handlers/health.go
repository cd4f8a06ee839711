package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "food-delivery-internal"
	serviceVersion = "1.0.0"
)

// Healthz is the liveness probe; it never reports anything but 200.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Root is a small banner for anyone poking the service by hand.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Food Delivery Internal Service",
		"version": serviceVersion,
		"health":  "/healthz",
	})
}
