package stats

import (
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
)

// HoursRequest carries the raw query values of an hours lookup.
type HoursRequest struct {
	UserID  string
	Week    string
	Quarter string
	Year    string
}

// Window parses the query values into a time window.
func (r HoursRequest) Window() (worktime.Window, error) {
	var errs validator.ValidationErrors

	parse := func(field, raw string) *int {
		n, ok := validator.ParseInt(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: validator.MsgInvalidInt,
			})
		}
		return n
	}

	week := parse("week", r.Week)
	quarter := parse("quarter", r.Quarter)
	year := parse("year", r.Year)

	if len(errs) > 0 {
		return worktime.Window{}, errs
	}
	return worktime.ParseWindow(week, quarter, year)
}

type HoursResponse struct {
	HoursWorked float64 `json:"hours_worked"`
	HoursLeft   float64 `json:"hours_left"`
}

type AverageTimesResponse struct {
	AverageArrival string `json:"average_arrival"`
	AverageLeave   string `json:"average_leave"`
}

type TeamRatioResponse struct {
	LeaveToWorkRatio string `json:"leave_to_work_ratio"`
}
