package http

import (
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StatsHandler interface {
	Hours(w http.ResponseWriter, r *http.Request)
	AverageTimes(w http.ResponseWriter, r *http.Request)
	TeamRatio(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
	}
}

// Hours implements StatsHandler.
func (h *statsHandlerImpl) Hours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := stats.HoursRequest{
		UserID:  chi.URLParam(r, "user_id"),
		Week:    query.Get("week"),
		Quarter: query.Get("quarter"),
		Year:    query.Get("year"),
	}

	result, err := h.statsService.Hours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// AverageTimes implements StatsHandler.
func (h *statsHandlerImpl) AverageTimes(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.AverageTimes(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// TeamRatio implements StatsHandler.
func (h *statsHandlerImpl) TeamRatio(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.TeamRatio(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}
