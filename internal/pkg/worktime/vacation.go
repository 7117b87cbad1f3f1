package worktime

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
)

const DefaultVacationLimit = 14

// DefaultRestDays are the weekly rest days that never count as workdays.
var DefaultRestDays = []time.Weekday{time.Friday, time.Saturday}

// DateRange is an inclusive range of civil dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Policy is the vacation allowance. Limit applies both to a single request
// and to the sum of all requests a user ever made.
type Policy struct {
	Limit    int
	RestDays []time.Weekday
}

func DefaultPolicy() Policy {
	return Policy{Limit: DefaultVacationLimit, RestDays: DefaultRestDays}
}

// WorkdaysBetween counts the workdays in [start, end] under the default rest days.
func WorkdaysBetween(start, end time.Time) int {
	return DefaultPolicy().Workdays(start, end)
}

// Workdays counts the days in the inclusive range [start, end] that are not
// rest days. Only the calendar date of start and end is considered.
func (p Policy) Workdays(start, end time.Time) int {
	first := civilDate(start)
	days := dayNumber(end) - dayNumber(start) + 1
	if days <= 0 {
		return 0
	}

	perWeek := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if !p.isRestDay(d) {
			perWeek++
		}
	}

	workdays := int(days/7) * perWeek
	weekday := first.Weekday()
	for i := int64(0); i < days%7; i++ {
		if !p.isRestDay((weekday + time.Weekday(i)) % 7) {
			workdays++
		}
	}
	return workdays
}

// ValidateRequest checks a new vacation [start, end] against the allowance
// and the vacations already taken.
func (p Policy) ValidateRequest(start, end time.Time, taken []DateRange) error {
	if civilDate(start).After(civilDate(end)) {
		return validator.ValidationErrors{{
			Field:   "start_date",
			Message: "start_date must be before end_date",
		}}
	}

	requested := p.Workdays(start, end)
	if requested > p.Limit {
		return validator.ValidationErrors{{
			Message: fmt.Sprintf("The number of requested days is higher than the vacation limit (%d days)", p.Limit),
		}}
	}

	used := 0
	for _, r := range taken {
		used += p.Workdays(r.Start, r.End)
	}
	if used+requested > p.Limit {
		return validator.ValidationErrors{{
			Message: fmt.Sprintf("You have exceeded the number of vacations, you can only take %d more vacations", p.Limit-used),
		}}
	}

	return nil
}

func (p Policy) isRestDay(d time.Weekday) bool {
	for _, rest := range p.RestDays {
		if rest == d {
			return true
		}
	}
	return false
}

// dayNumber is the number of days between 1970-01-01 and the calendar date of t.
func dayNumber(t time.Time) int64 {
	return civilDate(t).Unix() / 86400
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
