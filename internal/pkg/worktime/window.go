package worktime

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
)

type WindowType string

const (
	WindowWeek    WindowType = "week"
	WindowQuarter WindowType = "quarter"
	WindowYear    WindowType = "year"
)

// Window selects punches by ISO week number, quarter or year. Week and quarter
// windows are not scoped to a year: week 13 matches week 13 of every year.
type Window struct {
	Type  WindowType
	Value int
}

var windowRanges = map[WindowType][2]int{
	WindowWeek:    {1, 53},
	WindowQuarter: {1, 4},
	WindowYear:    {1, 9999},
}

// ParseWindow builds a Window from optional query values. Exactly one of them
// must be set.
func ParseWindow(week, quarter, year *int) (Window, error) {
	var candidates []Window
	if week != nil {
		candidates = append(candidates, Window{Type: WindowWeek, Value: *week})
	}
	if quarter != nil {
		candidates = append(candidates, Window{Type: WindowQuarter, Value: *quarter})
	}
	if year != nil {
		candidates = append(candidates, Window{Type: WindowYear, Value: *year})
	}

	if len(candidates) != 1 {
		return Window{}, validator.ValidationErrors{{
			Message: "exactly one of week, quarter or year must be provided",
		}}
	}

	w := candidates[0]
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Validate() error {
	bounds, ok := windowRanges[w.Type]
	if !ok {
		return validator.ValidationErrors{{
			Message: fmt.Sprintf("unsupported time window %q", w.Type),
		}}
	}
	if w.Value < bounds[0] || w.Value > bounds[1] {
		return validator.ValidationErrors{{
			Field:   string(w.Type),
			Message: fmt.Sprintf("%s must be between %d and %d", w.Type, bounds[0], bounds[1]),
		}}
	}
	return nil
}

// Contains reports whether t falls in the window.
func (c *Calculator) Contains(w Window, t time.Time) bool {
	local := t.In(c.loc)
	switch w.Type {
	case WindowWeek:
		_, week := local.ISOWeek()
		return week == w.Value
	case WindowQuarter:
		return (int(local.Month())-1)/3+1 == w.Value
	case WindowYear:
		return local.Year() == w.Value
	}
	return false
}

// HoursForWindow classifies the subset of times that falls in w.
func (c *Calculator) HoursForWindow(w Window, times []time.Time) Tally {
	filtered := make([]time.Time, 0, len(times))
	for _, t := range times {
		if c.Contains(w, t) {
			filtered = append(filtered, t)
		}
	}
	return c.Classify(filtered)
}
