package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

var allowedHeaders = "Content-Type, " +
	"Content-Length, " +
	"Accept-Encoding, " +
	"Authorization, " +
	"accept, origin, " +
	"Cache-Control, " +
	"X-Requested-With"

// CorsMiddleware allows any origin. Frame clients and validators fetch the
// card endpoints from arbitrary hosts, so the policy is deliberately open.
func CorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, HEAD")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"environment": os.Getenv("APP_ENV"),
		"version":     "1.0.0",
	})
}
