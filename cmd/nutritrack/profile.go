package nutritrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/model"
	"nutritrack/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile and calorie target",
}

var (
	profileGender    string
	profileAge       int
	profileHeight    float64
	profileWeight    float64
	profileActivity  float64
	profileGoal      string
	profileReminders bool
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile; recomputes TDEE and the daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.SaveProfile(sqldb, service.SaveProfileInput{
				Gender:           model.Gender(profileGender),
				Age:              profileAge,
				HeightCm:         profileHeight,
				WeightKg:         profileWeight,
				ActivityLevel:    profileActivity,
				Goal:             model.Goal(profileGoal),
				RemindersEnabled: profileReminders,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved. TDEE %.0f kcal, daily target %.0f kcal\n", p.TDEE, p.DailyCalorieTarget)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Gender: %s  Age: %d\n", p.Gender, p.Age)
			fmt.Fprintf(out, "Height: %.1fcm  Weight: %.1fkg\n", p.HeightCm, p.WeightKg)
			fmt.Fprintf(out, "Activity: %.3f  Goal: %s\n", p.ActivityLevel, p.Goal)
			fmt.Fprintf(out, "TDEE: %.0f kcal  Daily target: %.0f kcal\n", p.TDEE, p.DailyCalorieTarget)
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (Male|Female)")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileActivity, "activity", 0, "Activity multiplier (1.2|1.375|1.55|1.725|1.9)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal (Lose|Maintain|Gain)")
	profileSetCmd.Flags().BoolVar(&profileReminders, "reminders", false, "Enable reminders")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
