// Package worktime turns raw attendance punches and vacation ranges into
// working-hour statistics. Everything here is pure and safe for concurrent use.
package worktime

import (
	"errors"
	"time"
)

var (
	ErrNoWorkingHours = errors.New("team has no recorded working hours")
	ErrEmptyHistory   = errors.New("no punches to average")
)

// Tally is the number of hours spent working and away between punches.
type Tally struct {
	HoursWorked float64
	HoursLeft   float64
}

// Calculator evaluates punches against calendar days of a single location.
type Calculator struct {
	loc *time.Location
}

func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

// Location returns the location used to derive calendar days.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// DayBounds returns the start of the calendar day containing t and the start
// of the following day.
func (c *Calculator) DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(c.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 0, 1)
}

// Classify sums the intervals between consecutive punches of one user.
// times must be in ascending order. Pairs spanning two calendar days are
// skipped. The pair position decides the bucket: the 1st, 3rd, 5th... pair
// counts as working time and the others as time away, whatever the stored
// IN/OUT labels say. A day with an odd number of punches therefore loses the
// contribution of its last punch.
func (c *Calculator) Classify(times []time.Time) Tally {
	var workingMinutes, leavingMinutes float64
	for i := 0; i+1 < len(times); i++ {
		if !c.sameDay(times[i], times[i+1]) {
			continue
		}
		minutes := times[i+1].Sub(times[i]).Seconds() / 60
		if i%2 == 0 {
			workingMinutes += minutes
		} else {
			leavingMinutes += minutes
		}
	}
	return Tally{
		HoursWorked: workingMinutes / 60,
		HoursLeft:   leavingMinutes / 60,
	}
}

func (c *Calculator) sameDay(a, b time.Time) bool {
	return c.dayOf(a) == c.dayOf(b)
}

type civilDay struct {
	year  int
	month time.Month
	day   int
}

func (c *Calculator) dayOf(t time.Time) civilDay {
	y, m, d := t.In(c.loc).Date()
	return civilDay{year: y, month: m, day: d}
}
