// handlers/health_handlers.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/splitlens/analytics-backend/repository"
)

var startedAt = time.Now()

// Health reports service uptime and database reachability
func Health(c *gin.Context) {
	if err := repository.GetDB().Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(startedAt).Truncate(time.Second).String(),
	})
}
