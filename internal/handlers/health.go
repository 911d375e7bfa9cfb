package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HealthCheck(c *gin.Context) {
	status, code := "ok", http.StatusOK
	body := gin.H{"message": "Innovate Connect is running"}

	if h.Health != nil {
		healthy, results := h.Health.Run(c.Request.Context())

		if !healthy {
			h.Logger.Error("health check failed", "checks", results)
			status, code = "degraded", http.StatusServiceUnavailable
		}

		body["checks"] = results
	}

	body["status"] = status
	body["timestamp"] = time.Now().Format(time.RFC3339)

	c.JSON(code, body)
}
