package worktime

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestHoursForWindow_ReferenceScenarios(t *testing.T) {
	calc := NewCalculator(time.UTC)

	tests := []struct {
		name       string
		window     Window
		wantWorked float64
		wantLeft   float64
	}{
		{"week 13", Window{Type: WindowWeek, Value: 13}, 9.0, 2.0},
		{"quarter 4", Window{Type: WindowQuarter, Value: 4}, 21.0, 4.0},
		{"year 2021", Window{Type: WindowYear, Value: 2021}, 30.0, 6.0},
		{"empty year", Window{Type: WindowYear, Value: 2020}, 0.0, 0.0},
		{"empty quarter", Window{Type: WindowQuarter, Value: 1}, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := calc.HoursForWindow(tt.window, firstMemberPunches)
			assert.Equal(t, tt.wantWorked, tally.HoursWorked)
			assert.Equal(t, tt.wantLeft, tally.HoursLeft)
		})
	}
}

func TestContains_WeekIgnoresYear(t *testing.T) {
	calc := NewCalculator(time.UTC)
	week13 := Window{Type: WindowWeek, Value: 13}

	assert.True(t, calc.Contains(week13, utc(2021, time.April, 4, 8, 0)))
	assert.True(t, calc.Contains(week13, utc(2022, time.March, 30, 8, 0)))
	assert.False(t, calc.Contains(week13, utc(2021, time.April, 5, 8, 0)))
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		week    *int
		quarter *int
		year    *int
		want    Window
		wantErr string
	}{
		{name: "week", week: intPtr(13), want: Window{Type: WindowWeek, Value: 13}},
		{name: "quarter", quarter: intPtr(4), want: Window{Type: WindowQuarter, Value: 4}},
		{name: "year", year: intPtr(2021), want: Window{Type: WindowYear, Value: 2021}},
		{name: "none", wantErr: "exactly one of week, quarter or year must be provided"},
		{name: "two", week: intPtr(1), year: intPtr(2021), wantErr: "exactly one of week, quarter or year must be provided"},
		{name: "quarter out of range", quarter: intPtr(5), wantErr: "quarter must be between 1 and 4"},
		{name: "week out of range", week: intPtr(0), wantErr: "week must be between 1 and 53"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindow(tt.week, tt.quarter, tt.year)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantErr, verrs[0].Message)
		})
	}
}
