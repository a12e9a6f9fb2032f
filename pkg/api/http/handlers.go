package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greeting is the fixed body served on GET /
const Greeting = "Hello from Greetd!"

// handleGreeting handles greeting requests
func (s *Server) handleGreeting(c *gin.Context) {
	c.String(http.StatusOK, Greeting)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
