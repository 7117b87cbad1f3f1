package vacation

import (
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
)

// Vacation is an accepted leave over an inclusive range of civil dates.
type Vacation struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	UserID    string
}

func (v Vacation) Range() worktime.DateRange {
	return worktime.DateRange{Start: v.StartDate, End: v.EndDate}
}

func Ranges(vacations []Vacation) []worktime.DateRange {
	ranges := make([]worktime.DateRange, len(vacations))
	for i, v := range vacations {
		ranges[i] = v.Range()
	}
	return ranges
}
