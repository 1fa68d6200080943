package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

func HealthHandler(appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   appName + " is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   apiVersion,
		})
	}
}

// NoRouteHandler answers every unmatched route with a descriptive 404 body.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Route not found",
			"status":    http.StatusNotFound,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
		})
	}
}
