package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/sqlite"
	authService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/auth"
	punchService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/punch"
	statsService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/stats"
	vacationService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestAccessExp = "1h"
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestPassword  = "password123"
)

type testServer struct {
	t       *testing.T
	store   *sqlite.Store
	handler http.Handler
	clock   time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ts := &testServer{
		t:     t,
		store: store,
		clock: time.Date(2021, time.March, 29, 8, 0, 0, 0, time.UTC),
	}

	calc := worktime.NewCalculator(time.UTC)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	ts.handler = NewRouter(jwtSvc, logger, []string{"http://localhost:3000"}, Handlers{
		Auth:     NewAuthHandler(authService.NewAuthService(store.Users(), jwtSvc)),
		Punch:    NewPunchHandler(punchService.NewPunchService(store, store.Users(), store.Punches(), calc, cache.Noop{}, func() time.Time { return ts.clock })),
		Vacation: NewVacationHandler(vacationService.NewVacationService(store, store.Users(), store.Vacations(), worktime.DefaultPolicy())),
		Stats:    NewStatsHandler(statsService.NewStatsService(store.Users(), store.Punches(), calc, cache.Noop{})),
		Health:   NewHealthHandler(store),
	})
	return ts
}

// createUser registers a user and returns it with a token obtained over HTTP.
func (ts *testServer) createUser(username string) (user.User, string) {
	ts.t.Helper()
	svc := authService.NewAuthService(ts.store.Users(), jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp))
	created, err := svc.CreateUser(context.Background(), user.CreateUserRequest{Username: username, Password: handlerTestPassword})
	require.NoError(ts.t, err)

	rec := ts.do(http.MethodPost, "/api/obtain-auth-token/", "", map[string]string{
		"username": username,
		"password": handlerTestPassword,
	})
	require.Equal(ts.t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(ts.t, json.Unmarshal(rec.Body.Bytes(), &body))

	u, err := ts.store.Users().GetByID(context.Background(), created.ID)
	require.NoError(ts.t, err)
	return u, body.Token
}

func (ts *testServer) seedPunches(userID string, times []time.Time) {
	ts.t.Helper()
	for i, at := range times {
		_, err := ts.store.Punches().Create(context.Background(), punch.Punch{
			Kind:      punch.KindForCount(i),
			Timestamp: at,
			UserID:    userID,
		})
		require.NoError(ts.t, err)
	}
}

func (ts *testServer) do(method, target, token string, body interface{}) *httptest.ResponseRecorder {
	ts.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2021, month, day, hour, minute, 0, 0, time.UTC)
}

var firstMemberPunches = []time.Time{
	at(time.April, 4, 8, 0), at(time.April, 4, 13, 0), at(time.April, 4, 15, 0), at(time.April, 4, 19, 0),
	at(time.December, 1, 8, 0), at(time.December, 1, 12, 0),
	at(time.December, 2, 9, 0), at(time.December, 2, 19, 0),
	at(time.December, 4, 8, 0), at(time.December, 4, 11, 0), at(time.December, 4, 15, 0), at(time.December, 4, 19, 0),
}

var secondMemberPunches = []time.Time{
	at(time.May, 1, 6, 0), at(time.May, 1, 13, 0), at(time.May, 1, 15, 0), at(time.May, 1, 21, 0),
	at(time.October, 1, 11, 0), at(time.October, 1, 12, 0),
	at(time.October, 2, 9, 30), at(time.October, 2, 19, 0),
	at(time.October, 4, 8, 45), at(time.October, 4, 11, 0), at(time.October, 4, 15, 0), at(time.October, 4, 17, 30),
}

func TestObtainToken(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser("dana")

	rec := ts.do(http.MethodPost, "/api/obtain-auth-token/", "", map[string]string{"username": "dana", "password": "wrong-pass"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"non_field_errors":["Unable to log in with provided credentials."]}`, rec.Body.String())

	rec = ts.do(http.MethodPost, "/api/obtain-auth-token/", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"username":["This field is required."],"password":["This field is required."]}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/obtain-auth-token/", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["detail"], "JSON parse error")
}

func TestAuthenticationRequired(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{
		"/api/users/0190a6c8-0000-7000-8000-000000000000/hours?week=1",
		"/api/users/0190a6c8-0000-7000-8000-000000000000/average-times",
		"/api/team-stats/working-to-leaving",
	} {
		rec := ts.do(http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, rec.Body.String())
	}

	rec := ts.do(http.MethodPost, "/api/check/", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid token."}`, rec.Body.String())
}

func TestCheck(t *testing.T) {
	ts := newTestServer(t)
	dana, token := ts.createUser("dana")

	rec := ts.do(http.MethodPost, "/api/check/", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "IN", body["check_choice"])
	assert.Equal(t, "2021-03-29T08:00:00Z", body["check_time"])
	assert.Equal(t, map[string]interface{}{"id": dana.ID, "username": "dana"}, body["checked_by"])
	assert.NotEmpty(t, body["id"])

	ts.clock = ts.clock.Add(9 * time.Hour)
	rec = ts.do(http.MethodPost, "/api/check", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "OUT", decodeBody(t, rec)["check_choice"])

	ts.clock = ts.clock.Add(24 * time.Hour)
	rec = ts.do(http.MethodPost, "/api/check/", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "IN", decodeBody(t, rec)["check_choice"])
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser("dana")

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/check/"},
		{http.MethodGet, "/api/vacation/"},
		{http.MethodPost, "/api/team-stats/working-to-leaving"},
		{http.MethodDelete, "/api/users/0190a6c8-0000-7000-8000-000000000000/hours"},
		{http.MethodGet, "/api/obtain-auth-token/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := ts.do(tt.method, tt.target, token, nil)
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, `Method "`+tt.method+`" not allowed.`, decodeBody(t, rec)["detail"])
		})
	}
}

func TestVacation(t *testing.T) {
	ts := newTestServer(t)
	dana, token := ts.createUser("dana")

	rec := ts.do(http.MethodPost, "/api/vacation/", token, map[string]string{"start_date": "2021-02-01", "end_date": "2021-02-15"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "2021-02-01", body["start_date"])
	assert.Equal(t, "2021-02-15", body["end_date"])
	assert.Equal(t, map[string]interface{}{"id": dana.ID, "username": "dana"}, body["taken_by"])

	rec = ts.do(http.MethodPost, "/api/vacation/", token, map[string]string{"start_date": "2021-02-22", "end_date": "2021-02-26"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"non_field_errors":["You have exceeded the number of vacations, you can only take 3 more vacations"]}`, rec.Body.String())

	rec = ts.do(http.MethodPost, "/api/vacation/", token, map[string]string{"start_date": "2021-02-26", "end_date": "2021-02-22"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"start_date":["start_date must be before end_date"]}`, rec.Body.String())

	rec = ts.do(http.MethodPost, "/api/vacation/", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"start_date":["This field is required."],"end_date":["This field is required."]}`, rec.Body.String())
}

func TestHours(t *testing.T) {
	ts := newTestServer(t)
	first, token := ts.createUser("first")
	idle, _ := ts.createUser("idle")
	ts.seedPunches(first.ID, firstMemberPunches)

	tests := []struct {
		query      string
		wantStatus int
		wantBody   string
	}{
		{"week=13", http.StatusOK, `{"hours_worked":9,"hours_left":2}`},
		{"quarter=4", http.StatusOK, `{"hours_worked":21,"hours_left":4}`},
		{"year=2021", http.StatusOK, `{"hours_worked":30,"hours_left":6}`},
		{"week=abc", http.StatusBadRequest, `{"week":["A valid integer is required."]}`},
		{"", http.StatusBadRequest, `{"non_field_errors":["exactly one of week, quarter or year must be provided"]}`},
		{"week=60", http.StatusBadRequest, `{"week":["week must be between 1 and 53"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := ts.do(http.MethodGet, "/api/users/"+first.ID+"/hours?"+tt.query, token, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}

	rec := ts.do(http.MethodGet, "/api/users/"+idle.ID+"/hours?week=13", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"User `+idle.ID+` has no checks"}`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/users/0190a6c8-0000-7000-8000-000000000000/hours?week=13", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
}

func TestAverageTimes(t *testing.T) {
	ts := newTestServer(t)
	first, token := ts.createUser("first")
	ts.seedPunches(first.ID, firstMemberPunches)

	rec := ts.do(http.MethodGet, "/api/users/"+first.ID+"/average-times", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"average_arrival":"08:15","average_leave":"17:15"}`, rec.Body.String())
}

func TestTeamRatio(t *testing.T) {
	ts := newTestServer(t)
	first, token := ts.createUser("first")

	rec := ts.do(http.MethodGet, "/api/team-stats/working-to-leaving/", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":"The team has no recorded working hours.","leave_to_work_ratio":null}`, rec.Body.String())

	second, _ := ts.createUser("second")
	ts.createUser("idle")
	ts.seedPunches(first.ID, firstMemberPunches)
	ts.seedPunches(second.ID, secondMemberPunches)

	rec = ts.do(http.MethodGet, "/api/team-stats/working-to-leaving", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"leave_to_work_ratio":"20.600858369098713%"}`, rec.Body.String())
}

func TestHealthzAndNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	require.NoError(t, ts.store.Close())

	rec = ts.do(http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"detail":"Database is unavailable."}`, rec.Body.String())
}
