package nutritrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/model"
	"nutritrack/internal/service"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log and review exercise sessions",
}

var (
	exerciseType     string
	exerciseDesc     string
	exerciseDuration int
	exerciseCalories int
	exerciseDate     string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise log; calories are estimated by AI when omitted",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayOrToday(exerciseDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddExercise(context.Background(), sqldb, exerciseEstimator(), service.AddExerciseInput{
				Type:           model.ExerciseType(exerciseType),
				Description:    exerciseDesc,
				DurationMin:    exerciseDuration,
				CaloriesBurned: exerciseCalories,
				Date:           day,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added exercise log %d\n", id)
			return nil
		})
	},
}

var (
	exerciseListDate string
	exerciseFrom     string
	exerciseTo       string
	exerciseLimit    int
)

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.ListExercise(sqldb, service.LogFilter{
				Date:     exerciseListDate,
				FromDate: exerciseFrom,
				ToDate:   exerciseTo,
				Limit:    exerciseLimit,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No exercise logs found")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(out, "%d  %s  %s  %dmin  %d kcal  %s\n",
					l.ID, l.Date.Format("2006-01-02"), l.Type, l.DurationMin, l.CaloriesBurned, l.Description)
			}
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise log id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteExercise(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise log %d\n", id)
			return nil
		})
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type (Cardio|Strength|Yoga|Other)")
	exerciseAddCmd.Flags().StringVar(&exerciseDesc, "desc", "", "Description")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
	exerciseAddCmd.Flags().IntVar(&exerciseCalories, "calories", 0, "Calories burned (0 = estimate)")
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "Date (YYYY-MM-DD, default today)")

	exerciseListCmd.Flags().StringVar(&exerciseListDate, "date", "", "Filter by exact date (YYYY-MM-DD)")
	exerciseListCmd.Flags().StringVar(&exerciseFrom, "from", "", "Filter from date (YYYY-MM-DD)")
	exerciseListCmd.Flags().StringVar(&exerciseTo, "to", "", "Filter to date (YYYY-MM-DD)")
	exerciseListCmd.Flags().IntVar(&exerciseLimit, "limit", 0, "Limit number of rows")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
