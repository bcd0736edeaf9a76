package nutritrack

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Weekly and monthly analytics",
}

var (
	statsDate string
	statsJSON bool
)

var statsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the last 7 days of totals plus the logging streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		today, err := parseDayOrToday(statsDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			view, err := service.WeeklyStats(sqldb, today)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if statsJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			fmt.Fprintf(out, "Streak: %d days  Target: %.0f kcal\n", view.Streak, view.CalorieTarget)
			for _, d := range view.Days {
				fmt.Fprintf(out, "  %-10s %s  %d kcal  P %.1fg C %.1fg F %.1fg  %dml\n",
					d.DayName, d.Date, d.Calories, d.Protein, d.Carbs, d.Fats, d.WaterML)
			}
			return nil
		})
	},
}

var statsMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show month-to-date analytics: adherence, streak, weight trend and insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		today, err := parseDayOrToday(statsDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			view, err := service.MonthlyStats(sqldb, today)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if statsJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			fmt.Fprintf(out, "%s\n", view.Month)
			fmt.Fprintf(out, "BMI: %.1f (%s)\n", view.BMI.Value, view.BMI.Category)
			fmt.Fprintf(out, "Streak: %d days\n", view.Signals.Streak)
			fmt.Fprintf(out, "Adherence: %d/%d days (%.1f%%)\n", view.Signals.Adherence.MetDays, view.Signals.Adherence.LoggedDays, view.Signals.Adherence.Percentage)
			fmt.Fprintf(out, "Weight change: %+.1fkg  Plateau: %t\n", view.Signals.WeightChange, view.Signals.Plateau)
			for _, msg := range view.Signals.Insights {
				fmt.Fprintf(out, "- %s\n", msg)
			}
			return nil
		})
	},
}

func init() {
	statsCmd.PersistentFlags().StringVar(&statsDate, "date", "", "Treat this date as today (YYYY-MM-DD)")
	statsCmd.PersistentFlags().BoolVar(&statsJSON, "json", false, "Output as JSON")

	statsCmd.AddCommand(statsWeekCmd)
	statsCmd.AddCommand(statsMonthCmd)
	rootCmd.AddCommand(statsCmd)
}
