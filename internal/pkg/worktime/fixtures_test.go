package worktime

import "time"

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// firstMemberPunches holds 9 working and 2 leaving hours in week 13,
// 21 working and 4 leaving hours in Q4 and 30/6 over 2021.
var firstMemberPunches = []time.Time{
	utc(2021, time.April, 4, 8, 0),
	utc(2021, time.April, 4, 13, 0),
	utc(2021, time.April, 4, 15, 0),
	utc(2021, time.April, 4, 19, 0),
	utc(2021, time.December, 1, 8, 0),
	utc(2021, time.December, 1, 12, 0),
	utc(2021, time.December, 2, 9, 0),
	utc(2021, time.December, 2, 19, 0),
	utc(2021, time.December, 4, 8, 0),
	utc(2021, time.December, 4, 11, 0),
	utc(2021, time.December, 4, 15, 0),
	utc(2021, time.December, 4, 19, 0),
}

var secondMemberPunches = []time.Time{
	utc(2021, time.May, 1, 6, 0),
	utc(2021, time.May, 1, 13, 0),
	utc(2021, time.May, 1, 15, 0),
	utc(2021, time.May, 1, 21, 0),
	utc(2021, time.October, 1, 11, 0),
	utc(2021, time.October, 1, 12, 0),
	utc(2021, time.October, 2, 9, 30),
	utc(2021, time.October, 2, 19, 0),
	utc(2021, time.October, 4, 8, 45),
	utc(2021, time.October, 4, 11, 0),
	utc(2021, time.October, 4, 15, 0),
	utc(2021, time.October, 4, 17, 30),
}
