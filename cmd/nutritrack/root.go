package nutritrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutritrack",
	Short: "nutritrack logs meals, water, weight, exercise and sleep from your terminal",
	Long:  "nutritrack is a local-first nutrition tracker with calorie targets, streaks, adherence and monthly reports.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
