package nutritrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/service"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Log and review sleep",
}

var (
	sleepDate     string
	sleepBedtime  string
	sleepWakeTime string
	sleepDuration int
	sleepQuality  int
	sleepDeep     int
	sleepLight    int
	sleepRem      int
	sleepAwake    int
)

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a sleep log",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayOrToday(sleepDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddSleep(sqldb, service.AddSleepInput{
				Date:          day,
				Bedtime:       sleepBedtime,
				WakeTime:      sleepWakeTime,
				DurationMin:   sleepDuration,
				QualityScore:  sleepQuality,
				DeepSleepMin:  sleepDeep,
				LightSleepMin: sleepLight,
				RemSleepMin:   sleepRem,
				AwakeMin:      sleepAwake,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added sleep log %d\n", id)
			return nil
		})
	},
}

var (
	sleepListDate string
	sleepFrom     string
	sleepTo       string
	sleepLimit    int
)

var sleepListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sleep logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.ListSleep(sqldb, service.LogFilter{
				Date:     sleepListDate,
				FromDate: sleepFrom,
				ToDate:   sleepTo,
				Limit:    sleepLimit,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No sleep logs found")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(out, "%d  %s  %s-%s  %dmin  quality %d\n",
					l.ID, l.Date.Format("2006-01-02"), l.Bedtime, l.WakeTime, l.DurationMin, l.QualityScore)
			}
			return nil
		})
	},
}

var sleepHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the last 30 days of sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		today, err := parseDayOrToday("")
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.SleepHistory(sqldb, today)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No sleep logs in the last 30 days")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(out, "%d  %s  %s-%s  %dmin  quality %d\n",
					l.ID, l.Date.Format("2006-01-02"), l.Bedtime, l.WakeTime, l.DurationMin, l.QualityScore)
			}
			return nil
		})
	},
}

var sleepDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sleep log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("sleep log id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteSleep(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted sleep log %d\n", id)
			return nil
		})
	},
}

func init() {
	sleepAddCmd.Flags().StringVar(&sleepDate, "date", "", "Date (YYYY-MM-DD, default today)")
	sleepAddCmd.Flags().StringVar(&sleepBedtime, "bedtime", "", "Bedtime (HH:MM)")
	sleepAddCmd.Flags().StringVar(&sleepWakeTime, "wake", "", "Wake time (HH:MM)")
	sleepAddCmd.Flags().IntVar(&sleepDuration, "duration", 0, "Duration in minutes")
	sleepAddCmd.Flags().IntVar(&sleepQuality, "quality", 0, "Quality score (0-100)")
	sleepAddCmd.Flags().IntVar(&sleepDeep, "deep", 0, "Deep sleep minutes")
	sleepAddCmd.Flags().IntVar(&sleepLight, "light", 0, "Light sleep minutes")
	sleepAddCmd.Flags().IntVar(&sleepRem, "rem", 0, "REM sleep minutes")
	sleepAddCmd.Flags().IntVar(&sleepAwake, "awake", 0, "Awake minutes")

	sleepListCmd.Flags().StringVar(&sleepListDate, "date", "", "Filter by exact date (YYYY-MM-DD)")
	sleepListCmd.Flags().StringVar(&sleepFrom, "from", "", "Filter from date (YYYY-MM-DD)")
	sleepListCmd.Flags().StringVar(&sleepTo, "to", "", "Filter to date (YYYY-MM-DD)")
	sleepListCmd.Flags().IntVar(&sleepLimit, "limit", 0, "Limit number of rows")

	sleepCmd.AddCommand(sleepAddCmd)
	sleepCmd.AddCommand(sleepListCmd)
	sleepCmd.AddCommand(sleepHistoryCmd)
	sleepCmd.AddCommand(sleepDeleteCmd)
	rootCmd.AddCommand(sleepCmd)
}
