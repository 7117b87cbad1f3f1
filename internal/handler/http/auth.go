package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	ObtainToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// ObtainToken implements AuthHandler.
func (h *authHandlerImpl) ObtainToken(w http.ResponseWriter, r *http.Request) {
	var req auth.ObtainTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.Warn("ObtainToken decode error", "error", err)
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.authService.ObtainToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}
