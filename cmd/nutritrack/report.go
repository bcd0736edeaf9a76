package nutritrack

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nutritrack/internal/service"
)

var (
	reportDate   string
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the monthly report",
	RunE: func(cmd *cobra.Command, args []string) error {
		today, err := parseDayOrToday(reportDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			view, err := service.MonthlyStats(sqldb, today)
			if err != nil {
				return err
			}
			data, err := service.RenderMonthlyReport(view, reportFormat)
			if err != nil {
				return err
			}
			if reportOut != "" {
				if err := os.WriteFile(reportOut, data, 0o644); err != nil {
					return fmt.Errorf("write report to %q: %w", reportOut, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", reportOut)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		})
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Treat this date as today (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "Output format (text|markdown|json)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Write the report to this file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
