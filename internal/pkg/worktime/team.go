package worktime

import (
	"strconv"
	"strings"
	"time"
)

// PunchLookup returns the ordered punch timestamps of a user.
type PunchLookup func(userID string) []time.Time

// TeamRatio returns the team's hours away as a percentage of its working
// hours. Members without punches are skipped.
func (c *Calculator) TeamRatio(team []string, lookup PunchLookup) (float64, error) {
	var worked, left float64
	for _, member := range team {
		times := lookup(member)
		if len(times) == 0 {
			continue
		}
		tally := c.Classify(times)
		worked += tally.HoursWorked
		left += tally.HoursLeft
	}

	if worked == 0 {
		return 0, ErrNoWorkingHours
	}
	return (left / worked) * 100, nil
}

// FormatRatio renders ratio with the shortest digits that round-trip,
// followed by a percent sign. Decimal exponents below -4 or from 16 up use
// exponent form ("1e-05"); otherwise integral values keep a trailing ".0".
func FormatRatio(ratio float64) string {
	sci := strconv.FormatFloat(ratio, 'e', -1, 64)
	if exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:]); err == nil && (exp < -4 || exp >= 16) {
		return sci + "%"
	}

	s := strconv.FormatFloat(ratio, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}
