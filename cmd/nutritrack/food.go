package nutritrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/model"
	"nutritrack/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and review meals",
}

var (
	foodName     string
	foodCalories int
	foodProtein  float64
	foodCarbs    float64
	foodFats     float64
	foodMeal     string
	foodDate     string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food log",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayOrToday(foodDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddFood(sqldb, service.AddFoodInput{
				Name:     foodName,
				Calories: foodCalories,
				Protein:  foodProtein,
				Carbs:    foodCarbs,
				Fats:     foodFats,
				Meal:     model.MealType(foodMeal),
				Date:     day,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food log %d\n", id)
			return nil
		})
	},
}

var (
	foodListDate string
	foodFrom     string
	foodTo       string
	foodLimit    int
)

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.ListFood(sqldb, service.LogFilter{
				Date:     foodListDate,
				FromDate: foodFrom,
				ToDate:   foodTo,
				Limit:    foodLimit,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No food logs found")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(out, "%d  %s  %s  %s  %d kcal  P %.1fg C %.1fg F %.1fg\n",
					l.ID, l.Date.Format("2006-01-02"), l.Meal, l.Name, l.Calories, l.Protein, l.Carbs, l.Fats)
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("food log id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteFood(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food log %d\n", id)
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Estimate nutrition for a food using AI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := geminiEstimator()
		if client == nil {
			return fmt.Errorf("food search needs GEMINI_API_KEY to be set")
		}
		query := args[0]
		for _, a := range args[1:] {
			query += " " + a
		}
		est, err := client.EstimateFood(context.Background(), query)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d kcal  P %.1fg C %.1fg F %.1fg (per serving, estimated)\n",
			est.Name, est.Calories, est.ProteinG, est.CarbsG, est.FatsG)
		return nil
	},
}

func init() {
	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories (kcal)")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein (g)")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs (g)")
	foodAddCmd.Flags().Float64Var(&foodFats, "fats", 0, "Fats (g)")
	foodAddCmd.Flags().StringVar(&foodMeal, "meal", "", "Meal type (Breakfast|Lunch|Dinner|Snack)")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")

	foodListCmd.Flags().StringVar(&foodListDate, "date", "", "Filter by exact date (YYYY-MM-DD)")
	foodListCmd.Flags().StringVar(&foodFrom, "from", "", "Filter from date (YYYY-MM-DD)")
	foodListCmd.Flags().StringVar(&foodTo, "to", "", "Filter to date (YYYY-MM-DD)")
	foodListCmd.Flags().IntVar(&foodLimit, "limit", 0, "Limit number of rows")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	foodCmd.AddCommand(foodSearchCmd)
	rootCmd.AddCommand(foodCmd)
}
