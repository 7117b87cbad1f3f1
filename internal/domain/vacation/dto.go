package vacation

import (
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
)

type CreateVacationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	UserID string `json:"-"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, field := range []struct {
		name  string
		value string
	}{
		{"start_date", r.StartDate},
		{"end_date", r.EndDate},
	} {
		if validator.IsEmpty(field.value) {
			errs = append(errs, validator.ValidationError{
				Field:   field.name,
				Message: validator.MsgRequired,
			})
		} else if _, ok := validator.IsValidDate(field.value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field.name,
				Message: validator.MsgInvalidDate,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed range. Call Validate first.
func (r *CreateVacationRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type VacationResponse struct {
	ID        string         `json:"id"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	TakenBy   user.Reference `json:"taken_by"`
}

func NewVacationResponse(v Vacation, owner user.User) VacationResponse {
	return VacationResponse{
		ID:        v.ID,
		StartDate: validator.FormatDate(v.StartDate),
		EndDate:   validator.FormatDate(v.EndDate),
		TakenBy:   owner.Reference(),
	}
}
