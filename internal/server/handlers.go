package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"nutritrack/internal/model"
	"nutritrack/internal/service"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := service.GetProfile(s.db)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type profilePayload struct {
	Gender           string  `json:"gender"`
	Age              int     `json:"age"`
	HeightCm         float64 `json:"height_cm"`
	WeightKg         float64 `json:"weight_kg"`
	ActivityLevel    float64 `json:"activity_level"`
	Goal             string  `json:"goal"`
	RemindersEnabled bool    `json:"reminders_enabled"`
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var in profilePayload
	if !decodeBody(w, r, &in) {
		return
	}
	p, err := service.SaveProfile(s.db, service.SaveProfileInput{
		Gender:           model.Gender(in.Gender),
		Age:              in.Age,
		HeightCm:         in.HeightCm,
		WeightKg:         in.WeightKg,
		ActivityLevel:    in.ActivityLevel,
		Goal:             model.Goal(in.Goal),
		RemindersEnabled: in.RemindersEnabled,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type foodPayload struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fats     float64 `json:"fats_g"`
	Meal     string  `json:"meal_type"`
	Date     string  `json:"date"`
}

func (s *Server) handleAddFood(w http.ResponseWriter, r *http.Request) {
	var in foodPayload
	if !decodeBody(w, r, &in) {
		return
	}
	day, ok := s.resolveDay(w, in.Date)
	if !ok {
		return
	}
	id, err := service.AddFood(s.db, service.AddFoodInput{
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Meal:     model.MealType(in.Meal),
		Date:     day,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondCreated(w, id)
}

func (s *Server) handleListFood(w http.ResponseWriter, r *http.Request) {
	logs, err := service.ListFood(s.db, filterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleDeleteFood(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, service.DeleteFood)
}

func (s *Server) handleSearchFood(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	if s.foodEstimator == nil {
		respondError(w, http.StatusServiceUnavailable, "food search is not configured")
		return
	}
	est, err := s.foodEstimator.EstimateFood(r.Context(), query)
	if err != nil {
		log.WithError(err).Warn("food estimation failed")
		respondError(w, http.StatusBadGateway, "food estimation failed")
		return
	}
	respondJSON(w, http.StatusOK, est)
}

type waterPayload struct {
	AmountML int    `json:"amount_ml"`
	Date     string `json:"date"`
}

func (s *Server) handleAddWater(w http.ResponseWriter, r *http.Request) {
	var in waterPayload
	if !decodeBody(w, r, &in) {
		return
	}
	day, ok := s.resolveDay(w, in.Date)
	if !ok {
		return
	}
	id, err := service.AddWater(s.db, service.AddWaterInput{AmountML: in.AmountML, Date: day})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondCreated(w, id)
}

func (s *Server) handleListWater(w http.ResponseWriter, r *http.Request) {
	logs, err := service.ListWater(s.db, filterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleDeleteWater(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, service.DeleteWater)
}

type weightPayload struct {
	WeightKg float64 `json:"weight_kg"`
	Date     string  `json:"date"`
}

func (s *Server) handleAddWeight(w http.ResponseWriter, r *http.Request) {
	var in weightPayload
	if !decodeBody(w, r, &in) {
		return
	}
	day, ok := s.resolveDay(w, in.Date)
	if !ok {
		return
	}
	id, err := service.AddWeight(s.db, service.AddWeightInput{WeightKg: in.WeightKg, Date: day})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondCreated(w, id)
}

func (s *Server) handleListWeight(w http.ResponseWriter, r *http.Request) {
	logs, err := service.ListWeight(s.db, filterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, service.DeleteWeight)
}

type exercisePayload struct {
	Type           string `json:"exercise_type"`
	Description    string `json:"description"`
	DurationMin    int    `json:"duration_minutes"`
	CaloriesBurned int    `json:"calories_burned"`
	Date           string `json:"date"`
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var in exercisePayload
	if !decodeBody(w, r, &in) {
		return
	}
	day, ok := s.resolveDay(w, in.Date)
	if !ok {
		return
	}
	id, err := service.AddExercise(r.Context(), s.db, s.exerciseEstimator, service.AddExerciseInput{
		Type:           model.ExerciseType(in.Type),
		Description:    in.Description,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		Date:           day,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondCreated(w, id)
}

func (s *Server) handleListExercise(w http.ResponseWriter, r *http.Request) {
	logs, err := service.ListExercise(s.db, filterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, service.DeleteExercise)
}

type sleepPayload struct {
	Date          string `json:"date"`
	Bedtime       string `json:"bedtime"`
	WakeTime      string `json:"wake_time"`
	DurationMin   int    `json:"duration_minutes"`
	QualityScore  int    `json:"quality_score"`
	DeepSleepMin  int    `json:"deep_sleep_minutes"`
	LightSleepMin int    `json:"light_sleep_minutes"`
	RemSleepMin   int    `json:"rem_sleep_minutes"`
	AwakeMin      int    `json:"awake_minutes"`
}

func (s *Server) handleAddSleep(w http.ResponseWriter, r *http.Request) {
	var in sleepPayload
	if !decodeBody(w, r, &in) {
		return
	}
	day, ok := s.resolveDay(w, in.Date)
	if !ok {
		return
	}
	id, err := service.AddSleep(s.db, service.AddSleepInput{
		Date:          day,
		Bedtime:       in.Bedtime,
		WakeTime:      in.WakeTime,
		DurationMin:   in.DurationMin,
		QualityScore:  in.QualityScore,
		DeepSleepMin:  in.DeepSleepMin,
		LightSleepMin: in.LightSleepMin,
		RemSleepMin:   in.RemSleepMin,
		AwakeMin:      in.AwakeMin,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondCreated(w, id)
}

func (s *Server) handleListSleep(w http.ResponseWriter, r *http.Request) {
	logs, err := service.ListSleep(s.db, filterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleSleepHistory(w http.ResponseWriter, r *http.Request) {
	today, ok := s.resolveToday(w, r)
	if !ok {
		return
	}
	logs, err := service.SleepHistory(s.db, today)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleDeleteSleep(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, service.DeleteSleep)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	today, ok := s.resolveToday(w, r)
	if !ok {
		return
	}
	view, err := service.DashboardSummary(s.db, today)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	today, ok := s.resolveToday(w, r)
	if !ok {
		return
	}
	view, err := service.WeeklyStats(s.db, today)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	today, ok := s.resolveToday(w, r)
	if !ok {
		return
	}
	view, err := service.MonthlyStats(s.db, today)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleWaterIntake(w http.ResponseWriter, r *http.Request) {
	today, ok := s.resolveToday(w, r)
	if !ok {
		return
	}
	view, err := service.WaterIntake(s.db, today)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleWeightTracker(w http.ResponseWriter, r *http.Request) {
	view, err := service.WeightTracker(s.db)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	today, ok := s.resolveToday(w, r)
	if !ok {
		return
	}
	view, err := service.MonthlyStats(s.db, today)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	data, err := service.RenderMonthlyReport(view, format)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		w.Header().Set("Content-Type", "application/json")
	case "markdown", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// resolveToday honours an explicit ?date= override so results are
// reproducible; otherwise the server clock decides.
func (s *Server) resolveToday(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	return s.resolveDay(w, r.URL.Query().Get("date"))
}

func (s *Server) resolveDay(w http.ResponseWriter, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", raw))
		return time.Time{}, false
	}
	return day, true
}

func (s *Server) deleteByID(w http.ResponseWriter, r *http.Request, deleteFn func(*sql.DB, int64) error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := deleteFn(s.db, id); err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		respondError(w, http.StatusNotFound, "profile not found")
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

func filterFromQuery(r *http.Request) service.LogFilter {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	return service.LogFilter{
		Date:     q.Get("date"),
		FromDate: q.Get("from"),
		ToDate:   q.Get("to"),
		Limit:    limit,
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("encode response")
	}
}

func respondCreated(w http.ResponseWriter, id int64) {
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
