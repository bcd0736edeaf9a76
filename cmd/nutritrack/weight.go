package nutritrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and review weight measurements",
}

var (
	weightKg   float64
	weightDate string
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a weight log; also updates the profile weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayOrToday(weightDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddWeight(sqldb, service.AddWeightInput{WeightKg: weightKg, Date: day})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added weight log %d\n", id)
			return nil
		})
	},
}

var weightTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the weight history and trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			view, err := service.WeightTracker(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(view.Logs) == 0 {
				fmt.Fprintln(out, "No weight logs yet")
				return nil
			}
			fmt.Fprintf(out, "Current: %.1fkg  Start: %.1fkg  Change: %+.1fkg\n", view.CurrentKg, view.StartKg, view.ChangeKg)
			if view.Plateau {
				fmt.Fprintln(out, "Weight has plateaued over the last measurements")
			}
			for _, l := range view.Logs {
				fmt.Fprintf(out, "  %s  %.1fkg\n", l.Date.Format("2006-01-02"), l.WeightKg)
			}
			return nil
		})
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weight log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("weight log id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteWeight(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted weight log %d\n", id)
			return nil
		})
	},
}

func init() {
	weightAddCmd.Flags().Float64Var(&weightKg, "kg", 0, "Weight in kg")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date (YYYY-MM-DD, default today)")

	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightTrendCmd)
	weightCmd.AddCommand(weightDeleteCmd)
	rootCmd.AddCommand(weightCmd)
}
