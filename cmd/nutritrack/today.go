package nutritrack

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/service"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against the daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayOrToday(todayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			view, err := service.DashboardSummary(sqldb, day)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if todayJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			fmt.Fprintf(out, "Date: %s\n", view.Date)
			fmt.Fprintf(out, "Calories: %d / %.0f kcal (remaining %.0f)\n", view.CaloriesConsumed, view.CalorieTarget, view.CaloriesRemaining)
			fmt.Fprintf(out, "Macros: P %.1fg  C %.1fg  F %.1fg\n", view.Protein, view.Carbs, view.Fats)
			fmt.Fprintf(out, "Water: %dml  Exercise: %d kcal\n", view.WaterML, view.ExerciseCalories)
			for _, f := range view.Foods {
				fmt.Fprintf(out, "  %s  %s  %d kcal\n", f.Meal, f.Name, f.Calories)
			}
			return nil
		})
	},
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date (YYYY-MM-DD, default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(todayCmd)
}
