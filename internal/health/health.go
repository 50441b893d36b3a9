package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports process liveness.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// ReadinessHandler reports whether the database is reachable.
func ReadinessHandler(database pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status: "unavailable",
				Detail: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
