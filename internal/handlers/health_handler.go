package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store       Pinger
	environment string
	version     string
	startedAt   time.Time
}

func NewHealthHandler(store Pinger, environment, version string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{
		store:       store,
		environment: environment,
		version:     version,
		startedAt:   startedAt,
	}
}

type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
	Version     string  `json:"version"`
	MongoDB     string  `json:"mongodb"`
	Error       string  `json:"error,omitempty"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	now := time.Now()

	resp := HealthResponse{
		Status:      "OK",
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		Uptime:      now.Sub(h.startedAt).Seconds(),
		Environment: h.environment,
		Version:     h.version,
		MongoDB:     "connected",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("health check: store unreachable")
		resp.Status = "ERROR"
		resp.MongoDB = "disconnected"
		resp.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Bienvenue sur l'API UberEats",
		"version": h.version,
		"health":  "/api/health",
	})
}
