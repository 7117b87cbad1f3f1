package http

import (
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Check implements PunchHandler.
func (h *punchHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrMissingToken)
		return
	}

	result, err := h.punchService.Check(r.Context(), punch.CheckRequest{UserID: userID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}
