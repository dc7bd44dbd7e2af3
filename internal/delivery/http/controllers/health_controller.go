package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/metrics"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness checks.
type HealthController struct {
	Logger *slog.Logger
	Store  Pinger
}

// NewHealthController creates a HealthController that pings store.
func NewHealthController(logger *slog.Logger, store Pinger) *HealthController {
	return &HealthController{Logger: logger, Store: store}
}

// Health godoc
// @Summary Health check
// @Description Ping the document store.
// @Tags ops
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {string} string "store unavailable"
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	if err := c.Store.Ping(ctx); err != nil {
		metrics.StoreUp.Set(0)
		c.Logger.WarnContext(r.Context(), "store ping failed", "err", err)
		helpers.WriteText(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	metrics.StoreUp.Set(1)
	helpers.WriteText(w, http.StatusOK, "ok")
}
