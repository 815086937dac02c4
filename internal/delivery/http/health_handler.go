package http

import (
	"context"
	"net/http"
	"time"

	"github.com/frontandrew/garage/internal/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger - зависимость, доступность которой проверяет /health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler проверяет доступность БД и кэша
type HealthHandler struct {
	checks map[string]Pinger
	logger logger.Logger
}

// NewHealthHandler создает новый handler; checks - имя зависимости -> Pinger
func NewHealthHandler(checks map[string]Pinger, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Health возвращает состояние сервиса
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.logger.Warn("Health check failed", map[string]interface{}{
				"dependency": name,
				"error":      err.Error(),
			})
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"checks": status,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"checks": status,
	})
}
