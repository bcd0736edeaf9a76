package server_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/db"
	"nutritrack/internal/provider/gemini"
	"nutritrack/internal/server"
)

type stubFoodEstimator struct {
	est gemini.FoodEstimate
	err error
}

func (s *stubFoodEstimator) EstimateFood(context.Context, string) (gemini.FoodEstimate, error) {
	return s.est, s.err
}

func newTestServer(t *testing.T, foodEst server.FoodEstimator) (*server.Server, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutritrack.db")
	sqldb, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations(sqldb))
	t.Cleanup(func() { sqldb.Close() })
	return server.New(sqldb, foodEst, nil, []string{"*"}), sqldb
}

func doJSON(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const profileBody = `{
	"gender": "Male",
	"age": 30,
	"height_cm": 180,
	"weight_kg": 80,
	"activity_level": 1.55,
	"goal": "Lose"
}`

func TestHealth(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestProfileLifecycle(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPut, "/api/profile", profileBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"daily_calorie_target":2259`)

	rec = doJSON(t, h, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"goal":"Lose"`)
}

func TestSaveProfileRejectsBadInput(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPut, "/api/profile", `{"gender":"Robot","age":30,"height_cm":180,"weight_kg":80,"activity_level":1.55,"goal":"Lose"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPut, "/api/profile", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFoodEndpoints(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/foods", `{"name":"Oatmeal","calories":310,"protein_g":11,"carbs_g":54,"fats_g":5.5,"meal_type":"Breakfast","date":"2026-03-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/foods?date=2026-03-10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oatmeal")

	rec = doJSON(t, h, http.MethodDelete, "/api/foods/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/foods/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFoodSearch(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, &stubFoodEstimator{
		est: gemini.FoodEstimate{Name: "Banana", Calories: 105, ProteinG: 1.3, CarbsG: 27, FatsG: 0.4},
	})
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/foods/search?q=banana", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Banana"`)
	assert.Contains(t, rec.Body.String(), `"calories":105`)

	rec = doJSON(t, h, http.MethodGet, "/api/foods/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFoodSearchUpstreamFailure(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, &stubFoodEstimator{err: errors.New("quota exceeded")})
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/foods/search?q=banana", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestFoodSearchNotConfigured(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/foods/search?q=banana", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/dashboard?date=2026-03-10", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "dashboard requires a profile")

	rec = doJSON(t, h, http.MethodPut, "/api/profile", profileBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/foods", `{"name":"Lunch bowl","calories":600,"meal_type":"Lunch","date":"2026-03-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/dashboard?date=2026-03-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"calories_consumed":600`)
	assert.Contains(t, rec.Body.String(), `"calories_remaining":1659`)
}

func TestWeeklyAndMonthlyStats(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPut, "/api/profile", profileBody)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, d := range []string{"2026-03-08", "2026-03-09", "2026-03-10"} {
		rec = doJSON(t, h, http.MethodPost, "/api/foods", `{"name":"Meal","calories":2259,"meal_type":"Dinner","date":"`+d+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/stats/weekly?date=2026-03-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"streak":3`)

	rec = doJSON(t, h, http.MethodGet, "/api/stats/monthly?date=2026-03-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"March 2026"`)
	assert.Contains(t, rec.Body.String(), `"percentage":100`)
}

func TestWaterStats(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/water", `{"amount_ml":2000,"date":"2026-03-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/stats/water?date=2026-03-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"goal_ml":1750`)
	assert.Contains(t, rec.Body.String(), `"remaining_ml":0`)
}

func TestWeightTrackerEndpoint(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/weights", `{"weight_kg":81.0,"date":"2026-03-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, h, http.MethodPost, "/api/weights", `{"weight_kg":80.2,"date":"2026-03-09"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/stats/weight", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current_kg":80.2`)
	assert.Contains(t, rec.Body.String(), `"change_kg":-0.8`)
}

func TestSleepEndpoints(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/sleep", `{"date":"2026-03-09","bedtime":"23:15","wake_time":"07:00","duration_minutes":465,"quality_score":82}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/sleep/history?date=2026-03-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"23:15"`)

	rec = doJSON(t, h, http.MethodPost, "/api/sleep", `{"date":"2026-03-09","bedtime":"25:00","wake_time":"07:00","duration_minutes":465,"quality_score":82}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonthlyReportFormats(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPut, "/api/profile", profileBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/report?date=2026-03-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Monthly Report - March 2026")

	rec = doJSON(t, h, http.MethodGet, "/api/report?date=2026-03-10&format=markdown", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# Monthly Report - March 2026")

	rec = doJSON(t, h, http.MethodGet, "/api/report?date=2026-03-10&format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidDateParam(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t, nil)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/dashboard?date=March-10", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
