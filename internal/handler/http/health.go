package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
)

const readyTimeout = 2 * time.Second

// Pinger is a store that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Ready(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db Pinger
}

func NewHealthHandler(db Pinger) HealthHandler {
	return &healthHandlerImpl{
		db: db,
	}
}

// Ready implements HealthHandler.
func (h *healthHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("readiness check failed", "error", err)
		response.ServiceUnavailable(w, "Database is unavailable.")
		return
	}

	response.OK(w, map[string]string{"status": "ok"})
}
