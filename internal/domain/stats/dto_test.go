package stats

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursRequest_Window(t *testing.T) {
	tests := []struct {
		name    string
		req     HoursRequest
		want    worktime.Window
		wantErr map[string][]string
	}{
		{name: "week", req: HoursRequest{Week: "13"}, want: worktime.Window{Type: worktime.WindowWeek, Value: 13}},
		{name: "quarter", req: HoursRequest{Quarter: "4"}, want: worktime.Window{Type: worktime.WindowQuarter, Value: 4}},
		{name: "year", req: HoursRequest{Year: "2021"}, want: worktime.Window{Type: worktime.WindowYear, Value: 2021}},
		{
			name:    "not an integer",
			req:     HoursRequest{Week: "thirteen"},
			wantErr: map[string][]string{"week": {validator.MsgInvalidInt}},
		},
		{
			name:    "none",
			req:     HoursRequest{},
			wantErr: map[string][]string{validator.NonFieldErrors: {"exactly one of week, quarter or year must be provided"}},
		},
		{
			name:    "two windows",
			req:     HoursRequest{Week: "13", Year: "2021"},
			wantErr: map[string][]string{validator.NonFieldErrors: {"exactly one of week, quarter or year must be provided"}},
		},
		{
			name:    "out of range",
			req:     HoursRequest{Quarter: "5"},
			wantErr: map[string][]string{"quarter": {"quarter must be between 1 and 4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Window()
			if tt.wantErr != nil {
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Equal(t, tt.wantErr, verrs.ToMap())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoPunchesError(t *testing.T) {
	err := fmt.Errorf("average times: %w", &NoPunchesError{UserID: "42"})

	assert.True(t, errors.Is(err, ErrNoPunches))
	assert.EqualError(t, err, "average times: User 42 has no checks")

	var npe *NoPunchesError
	require.ErrorAs(t, err, &npe)
	assert.Equal(t, "User 42 has no checks", npe.Error())
}
