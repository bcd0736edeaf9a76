package nutritrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/service"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log and review water intake",
}

var (
	waterAmount int
	waterDate   string
)

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a water log",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayOrToday(waterDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddWater(sqldb, service.AddWaterInput{AmountML: waterAmount, Date: day})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added water log %d\n", id)
			return nil
		})
	},
}

var waterStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's intake against the daily goal with a 7-day chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		today, err := parseDayOrToday("")
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			view, err := service.WaterIntake(sqldb, today)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Today: %dml / %dml (remaining %dml)\n", view.TodayML, view.GoalML, view.RemainingML)
			for _, d := range view.Week {
				fmt.Fprintf(out, "  %-10s %dml\n", d.DayName, d.ML)
			}
			return nil
		})
	},
}

var (
	waterListDate string
	waterFrom     string
	waterTo       string
	waterLimit    int
)

var waterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List water logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.ListWater(sqldb, service.LogFilter{
				Date:     waterListDate,
				FromDate: waterFrom,
				ToDate:   waterTo,
				Limit:    waterLimit,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No water logs found")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(out, "%d  %s  %dml\n", l.ID, l.Date.Format("2006-01-02"), l.AmountML)
			}
			return nil
		})
	},
}

var waterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a water log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("water log id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteWater(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted water log %d\n", id)
			return nil
		})
	},
}

func init() {
	waterAddCmd.Flags().IntVar(&waterAmount, "amount", 0, "Amount in ml")
	waterAddCmd.Flags().StringVar(&waterDate, "date", "", "Date (YYYY-MM-DD, default today)")

	waterListCmd.Flags().StringVar(&waterListDate, "date", "", "Filter by exact date (YYYY-MM-DD)")
	waterListCmd.Flags().StringVar(&waterFrom, "from", "", "Filter from date (YYYY-MM-DD)")
	waterListCmd.Flags().StringVar(&waterTo, "to", "", "Filter to date (YYYY-MM-DD)")
	waterListCmd.Flags().IntVar(&waterLimit, "limit", 0, "Limit number of rows")

	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterListCmd)
	waterCmd.AddCommand(waterStatusCmd)
	waterCmd.AddCommand(waterDeleteCmd)
	rootCmd.AddCommand(waterCmd)
}
