package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 3 * time.Second

// Health serves the liveness and readiness probes. Liveness only confirms
// the process is up; readiness also checks the storage backends.
type Health struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealth(db *mongo.Database, rdb *redis.Client) *Health {
	return &Health{mongo: db, redis: rdb}
}

func (h *Health) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type probeResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *Health) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	checks := map[string]probeResult{
		"mongodb": probe(func() error { return h.mongo.Client().Ping(ctx, nil) }),
		"redis":   probe(func() error { return h.redis.Ping(ctx).Err() }),
	}

	status, code := "ok", http.StatusOK
	for _, r := range checks {
		if r.Status != "ok" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(code, map[string]any{
		"status":       status,
		"dependencies": checks,
	})
}

func probe(check func() error) probeResult {
	if err := check(); err != nil {
		return probeResult{Status: "unhealthy", Error: err.Error()}
	}
	return probeResult{Status: "ok"}
}
