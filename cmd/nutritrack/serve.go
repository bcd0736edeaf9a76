package nutritrack

import (
	"context"
	"database/sql"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nutritrack/internal/provider/gemini"
	"nutritrack/internal/server"
	"nutritrack/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Optional in development; real deployments set the environment
		// directly.
		_ = godotenv.Load()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := server.LoadConfig(ctx)
		if err != nil {
			return err
		}
		// --db wins over the environment.
		if strings.TrimSpace(dbPath) == "" && strings.TrimSpace(cfg.DBPath) != "" {
			dbPath = cfg.DBPath
		}

		return withDB(func(sqldb *sql.DB) error {
			var foodEst server.FoodEstimator
			var exerciseEst service.ExerciseEstimator
			if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
				client := &gemini.Client{
					APIKey:  cfg.GeminiAPIKey,
					Model:   cfg.GeminiModel,
					BaseURL: cfg.GeminiBaseURL,
				}
				foodEst = client
				exerciseEst = client
			} else {
				log.Warn("GEMINI_API_KEY not set, AI estimation disabled")
			}

			srv := server.New(sqldb, foodEst, exerciseEst, cfg.AllowedOrigins)
			return srv.Serve(ctx, cfg.Port)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
