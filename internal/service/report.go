package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RenderMonthlyReport serialises a monthly view for export. Supported formats
// are text, markdown (md) and json.
func RenderMonthlyReport(v *MonthlyView, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		var b bytes.Buffer
		printMonthlyReportText(&b, v)
		return b.Bytes(), nil
	case "markdown", "md":
		return []byte(renderMonthlyReportMarkdown(v)), nil
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal monthly report json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("invalid report format %q (use text|markdown|json)", format)
	}
}

func printMonthlyReportText(out *bytes.Buffer, v *MonthlyView) {
	fmt.Fprintf(out, "Monthly Report - %s\n\n", v.Month)

	fmt.Fprintln(out, "Profile")
	fmt.Fprintf(out, "Goal: %s\n", v.Profile.Goal)
	fmt.Fprintf(out, "Weight: %.1fkg  Height: %.1fcm\n", v.Profile.WeightKg, v.Profile.HeightCm)
	fmt.Fprintf(out, "BMI: %.1f (%s)\n", v.BMI.Value, v.BMI.Category)
	fmt.Fprintf(out, "Daily target: %.0f kcal\n", v.CalorieTarget)

	fmt.Fprintln(out, "\nSignals")
	fmt.Fprintf(out, "Streak: %d days\n", v.Signals.Streak)
	fmt.Fprintf(out, "Adherence: %d/%d days (%.1f%%)\n", v.Signals.Adherence.MetDays, v.Signals.Adherence.LoggedDays, v.Signals.Adherence.Percentage)
	fmt.Fprintf(out, "Weight change: %+.1fkg\n", v.Signals.WeightChange)
	fmt.Fprintf(out, "Plateau: %t\n", v.Signals.Plateau)

	fmt.Fprintln(out, "\nInsights")
	for _, msg := range v.Signals.Insights {
		fmt.Fprintf(out, "- %s\n", msg)
	}

	fmt.Fprintln(out, "\nDaily Calories")
	maxCal := 0
	for _, d := range v.Days {
		if d.Calories > maxCal {
			maxCal = d.Calories
		}
	}
	if maxCal == 0 {
		fmt.Fprintln(out, "  (all zero)")
		return
	}
	for _, d := range v.Days {
		fmt.Fprintf(out, "  %-10s %s %d\n", d.Date.Format("2006-01-02"), horizontalBar(d.Calories, maxCal, 24), d.Calories)
	}
}

func renderMonthlyReportMarkdown(v *MonthlyView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Report - %s\n\n", v.Month)

	fmt.Fprintf(&b, "## Profile\n")
	fmt.Fprintf(&b, "- Goal: `%s`\n", v.Profile.Goal)
	fmt.Fprintf(&b, "- Weight: %.1fkg, Height: %.1fcm\n", v.Profile.WeightKg, v.Profile.HeightCm)
	fmt.Fprintf(&b, "- BMI: %.1f (%s)\n", v.BMI.Value, v.BMI.Category)
	fmt.Fprintf(&b, "- Daily target: %.0f kcal\n\n", v.CalorieTarget)

	fmt.Fprintf(&b, "## Signals\n")
	fmt.Fprintf(&b, "- Streak: %d days\n", v.Signals.Streak)
	fmt.Fprintf(&b, "- Adherence: %d/%d days (%.1f%%)\n", v.Signals.Adherence.MetDays, v.Signals.Adherence.LoggedDays, v.Signals.Adherence.Percentage)
	fmt.Fprintf(&b, "- Weight change: %+.1fkg\n", v.Signals.WeightChange)
	fmt.Fprintf(&b, "- Plateau: %t\n\n", v.Signals.Plateau)

	fmt.Fprintf(&b, "## Insights\n")
	for _, msg := range v.Signals.Insights {
		fmt.Fprintf(&b, "- %s\n", msg)
	}

	fmt.Fprintf(&b, "\n## Daily Totals\n")
	fmt.Fprintf(&b, "| Date | Calories | Protein | Carbs | Fats | Water | Exercise |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, d := range v.Days {
		fmt.Fprintf(&b, "| %s | %d | %.1fg | %.1fg | %.1fg | %dml | %d |\n",
			d.Date.Format("2006-01-02"), d.Calories, d.Protein, d.Carbs, d.Fats, d.WaterML, d.ExerciseCalories)
	}
	return b.String()
}

func horizontalBar(value, maxAbs, width int) string {
	if width <= 0 || maxAbs <= 0 {
		return ""
	}
	bars := value * width / maxAbs
	if value != 0 && bars == 0 {
		bars = 1
	}
	if bars < 0 {
		bars = -bars
	}
	return strings.Repeat("#", bars)
}
