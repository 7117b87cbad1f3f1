package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
)

// noWorkingHours is returned when the team ratio is undefined.
type noWorkingHours struct {
	Detail           string  `json:"detail"`
	LeaveToWorkRatio *string `json:"leave_to_work_ratio"`
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var noPunches *stats.NoPunchesError
	if errors.As(err, &noPunches) {
		NotFound(w, noPunches.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		ValidationError(w, map[string][]string{
			validator.NonFieldErrors: {"Unable to log in with provided credentials."},
		})
	case errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, "Authentication credentials were not provided.")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token.")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Not found.")
	case errors.Is(err, user.ErrUsernameExists):
		ValidationError(w, map[string][]string{
			"username": {"A user with that username already exists."},
		})

	// Stats domain errors
	case errors.Is(err, worktime.ErrNoWorkingHours):
		UnprocessableEntity(w, noWorkingHours{
			Detail: "The team has no recorded working hours.",
		})

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "A server error occurred.")
	}
}
