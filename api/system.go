package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aidin1998/walletapi/pkg/models"
)

// staticUptime is shown on the landing page; the process does not track its start time.
const staticUptime = "0 days, 0 hours, 0 minutes"

// GET /
func (s *Server) homePage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", models.HomePage{
		Version:    s.opts.Version,
		Uptime:     staticUptime,
		ServerTime: time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /health
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
