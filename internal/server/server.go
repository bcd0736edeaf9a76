// Package server exposes the tracker over a JSON HTTP API.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"nutritrack/internal/provider/gemini"
	"nutritrack/internal/service"
)

// FoodEstimator resolves a free-text food query into nutrition figures.
type FoodEstimator interface {
	EstimateFood(ctx context.Context, description string) (gemini.FoodEstimate, error)
}

type Server struct {
	db                *sql.DB
	foodEstimator     FoodEstimator
	exerciseEstimator service.ExerciseEstimator
	allowedOrigins    []string

	// now is swapped out in tests for deterministic dates.
	now func() time.Time
}

func New(sqldb *sql.DB, foodEst FoodEstimator, exerciseEst service.ExerciseEstimator, allowedOrigins []string) *Server {
	return &Server{
		db:                sqldb,
		foodEstimator:     foodEst,
		exerciseEstimator: exerciseEst,
		allowedOrigins:    allowedOrigins,
		now:               time.Now,
	}
}

// Handler builds the full middleware chain: CORS around request logging
// around the router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/api/profile", s.handleGetProfile).Methods("GET")
	r.HandleFunc("/api/profile", s.handleSaveProfile).Methods("PUT", "POST")

	r.HandleFunc("/api/foods", s.handleListFood).Methods("GET")
	r.HandleFunc("/api/foods", s.handleAddFood).Methods("POST")
	r.HandleFunc("/api/foods/search", s.handleSearchFood).Methods("GET")
	r.HandleFunc("/api/foods/{id:[0-9]+}", s.handleDeleteFood).Methods("DELETE")

	r.HandleFunc("/api/water", s.handleListWater).Methods("GET")
	r.HandleFunc("/api/water", s.handleAddWater).Methods("POST")
	r.HandleFunc("/api/water/{id:[0-9]+}", s.handleDeleteWater).Methods("DELETE")

	r.HandleFunc("/api/weights", s.handleListWeight).Methods("GET")
	r.HandleFunc("/api/weights", s.handleAddWeight).Methods("POST")
	r.HandleFunc("/api/weights/{id:[0-9]+}", s.handleDeleteWeight).Methods("DELETE")

	r.HandleFunc("/api/exercises", s.handleListExercise).Methods("GET")
	r.HandleFunc("/api/exercises", s.handleAddExercise).Methods("POST")
	r.HandleFunc("/api/exercises/{id:[0-9]+}", s.handleDeleteExercise).Methods("DELETE")

	r.HandleFunc("/api/sleep", s.handleListSleep).Methods("GET")
	r.HandleFunc("/api/sleep", s.handleAddSleep).Methods("POST")
	r.HandleFunc("/api/sleep/history", s.handleSleepHistory).Methods("GET")
	r.HandleFunc("/api/sleep/{id:[0-9]+}", s.handleDeleteSleep).Methods("DELETE")

	r.HandleFunc("/api/dashboard", s.handleDashboard).Methods("GET")
	r.HandleFunc("/api/stats/weekly", s.handleWeeklyStats).Methods("GET")
	r.HandleFunc("/api/stats/monthly", s.handleMonthlyStats).Methods("GET")
	r.HandleFunc("/api/stats/water", s.handleWaterIntake).Methods("GET")
	r.HandleFunc("/api/stats/weight", s.handleWeightTracker).Methods("GET")
	r.HandleFunc("/api/report", s.handleMonthlyReport).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(loggingMiddleware(r))
}

// Serve blocks until the context is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, port int) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", port).Info("http server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.status,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
