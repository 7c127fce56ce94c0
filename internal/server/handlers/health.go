package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/plantkeeper/pkg/api"
)

// Pinger проверяет доступность зависимости (базы данных)
type Pinger interface {
	Ping(ctx context.Context) error
}

const (
	healthOK          = "ok"
	healthDegraded    = "degraded"
	healthUnavailable = "unavailable"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	responder
	db      Pinger
	cache   Pinger
	version string
}

// NewHealthHandler создает новый handler для health check.
// cache опционален: его недоступность дает degraded, а не 503.
func NewHealthHandler(logger *slog.Logger, db, cache Pinger, version string) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		db:        db,
		cache:     cache,
		version:   version,
	}
}

// Health обрабатывает GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := api.HealthResponse{Status: healthOK, Version: h.version, Checks: map[string]string{}}
	status := http.StatusOK

	if h.db != nil {
		resp.Checks["database"] = healthOK
		if err := h.db.Ping(ctx); err != nil {
			h.logger.ErrorContext(ctx, "database is unavailable", slog.Any("error", err))
			resp.Checks["database"] = healthUnavailable
			resp.Status = healthUnavailable
			status = http.StatusServiceUnavailable
		}
	}

	if h.cache != nil {
		resp.Checks["zone_cache"] = healthOK
		if err := h.cache.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "zone cache is unavailable", slog.Any("error", err))
			resp.Checks["zone_cache"] = healthUnavailable
			if resp.Status == healthOK {
				resp.Status = healthDegraded
			}
		}
	}

	h.sendJSON(w, resp, status)
}
