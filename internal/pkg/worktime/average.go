package worktime

import (
	"fmt"
	"time"
)

// AverageTimes holds mean arrival and leave clock times formatted as HH:MM.
type AverageTimes struct {
	Arrival string
	Leave   string
}

// AverageTimes takes the earliest punch of every calendar day as the arrival
// and the latest as the departure, then averages both over all days. Seconds
// are ignored and the mean is truncated to whole minutes.
func (c *Calculator) AverageTimes(times []time.Time) (AverageTimes, error) {
	if len(times) == 0 {
		return AverageTimes{}, ErrEmptyHistory
	}

	type bounds struct{ first, last time.Time }
	days := make(map[civilDay]*bounds)
	for _, t := range times {
		key := c.dayOf(t)
		b, ok := days[key]
		if !ok {
			days[key] = &bounds{first: t, last: t}
			continue
		}
		if t.Before(b.first) {
			b.first = t
		}
		if t.After(b.last) {
			b.last = t
		}
	}

	var arrivalSum, leaveSum int
	for _, b := range days {
		arrivalSum += c.minuteOfDay(b.first)
		leaveSum += c.minuteOfDay(b.last)
	}

	return AverageTimes{
		Arrival: formatClock(arrivalSum / len(days)),
		Leave:   formatClock(leaveSum / len(days)),
	}, nil
}

func (c *Calculator) minuteOfDay(t time.Time) int {
	local := t.In(c.loc)
	return local.Hour()*60 + local.Minute()
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
