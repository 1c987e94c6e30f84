// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import "github.com/gin-gonic/gin"

// Root serves the unauthenticated service banner at /.
func Root(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "API Controle Doações Animais",
		"status":  "Online",
	})
}

// Health handles the /health endpoint for liveness probes.
// It responds to any method and prevents caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "healthy"})
	}
}
