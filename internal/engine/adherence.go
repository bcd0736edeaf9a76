package engine

// EvaluateAdherence classifies each logged day as on target when its calories
// fall inside the inclusive ±10% band around target. Days with zero calories
// are excluded from both numerator and denominator: an unlogged day is not
// evaluated, it is not a miss. Percentage is over logged days only, rounded to
// 1 decimal.
func EvaluateAdherence(days []DaySummary, target float64) Adherence {
	out := Adherence{}
	lower := target * (1 - AdherenceTolerance)
	upper := target * (1 + AdherenceTolerance)
	for _, d := range days {
		if d.Calories <= 0 {
			continue
		}
		out.LoggedDays++
		cals := float64(d.Calories)
		if cals >= lower && cals <= upper {
			out.MetDays++
		}
	}
	if out.LoggedDays > 0 {
		out.Percentage = round1(float64(out.MetDays) / float64(out.LoggedDays) * 100)
	}
	return out
}
