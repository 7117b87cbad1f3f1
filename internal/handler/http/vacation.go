package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &vacationHandlerImpl{
		vacationService: vacationService,
	}
}

// Create implements VacationHandler.
func (h *vacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrMissingToken)
		return
	}

	var req vacation.CreateVacationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.Warn("CreateVacation decode error", "error", err)
		response.BadRequest(w, err.Error())
		return
	}
	req.UserID = userID

	result, err := h.vacationService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}
