package engine

import (
	"sort"
	"time"
)

// CurrentStreak counts consecutive calendar days with at least one food log,
// walking back from the most recent log date. A streak stays alive if the most
// recent log is today or yesterday: today not being logged yet does not break a
// run that reached yesterday. A gap of two or more days resets it to 0.
func CurrentStreak(logDates []time.Time, today time.Time) int {
	if len(logDates) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(logDates))
	distinct := make([]time.Time, 0, len(logDates))
	for _, d := range logDates {
		day := dateOnly(d)
		key := dateKey(day)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, day)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].After(distinct[j])
	})

	latest := distinct[0]
	if latest.Before(dateOnly(today).AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	current := latest
	for _, d := range distinct[1:] {
		if !d.Equal(current.AddDate(0, 0, -1)) {
			break
		}
		streak++
		current = d
	}
	return streak
}
