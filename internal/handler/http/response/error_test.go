package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        validator.ValidationErrors{{Field: "start_date", Message: "start_date must be before end_date"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"start_date":["start_date must be before end_date"]}`,
		},
		{
			name:       "non field validation",
			err:        fmt.Errorf("wrapped: %w", validator.ValidationErrors{{Message: "nope"}}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"non_field_errors":["nope"]}`,
		},
		{
			name:       "invalid credentials",
			err:        auth.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"non_field_errors":["Unable to log in with provided credentials."]}`,
		},
		{
			name:       "missing token",
			err:        auth.ErrMissingToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Authentication credentials were not provided."}`,
		},
		{
			name:       "invalid token",
			err:        auth.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Invalid token."}`,
		},
		{
			name:       "user not found",
			err:        fmt.Errorf("record punch: %w", user.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Not found."}`,
		},
		{
			name:       "username taken",
			err:        user.ErrUsernameExists,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"username":["A user with that username already exists."]}`,
		},
		{
			name:       "no punches",
			err:        &stats.NoPunchesError{UserID: "7"},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"User 7 has no checks"}`,
		},
		{
			name:       "no working hours",
			err:        worktime.ErrNoWorkingHours,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":"The team has no recorded working hours.","leave_to_work_ratio":null}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"A server error occurred."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()

	MethodNotAllowed(rec, http.MethodGet)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	var body ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, `Method "GET" not allowed.`, body.Detail)
}
