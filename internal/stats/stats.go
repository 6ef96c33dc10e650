// Package stats holds the pure arithmetic behind session totals, the
// recent-session summary and the per-user streak. Nothing in here
// touches the database.
package stats

import (
	"math"
	"time"

	"github.com/fitlog/fitlog/internal/models"
)

// DurationMinutes returns the whole minutes between start and end, or
// nil when the session has no end time yet.
func DurationMinutes(start time.Time, end *time.Time) *int64 {
	if end == nil {
		return nil
	}
	minutes := int64(end.Sub(start).Seconds() / 60)
	return &minutes
}

// SetVolume is weight × reps; sets without a weight (bodyweight,
// cardio) contribute zero.
func SetVolume(weight *float64, reps int) float64 {
	if weight == nil {
		return 0
	}
	return *weight * float64(reps)
}

// SessionTotals folds a session's sets into (total volume, set count).
// Every set counts toward volume regardless of its type; warm-ups are
// not excluded.
func SessionTotals(sets []models.ExerciseSet) (float64, int64) {
	var volume float64
	for _, s := range sets {
		volume += SetVolume(s.WeightKg, s.Reps)
	}
	return volume, int64(len(sets))
}

// Summary is the aggregate over a user's most recent completed sessions.
type Summary struct {
	TotalSessions   int64   `json:"total_sessions"`
	TotalVolume     float64 `json:"total_volume"`
	AverageDuration float64 `json:"average_duration"`
}

// Summarize computes the recent-session summary. Sessions missing a
// duration count as zero minutes; the average is rounded to one decimal
// place and is zero when there are no sessions.
func Summarize(sessions []models.WorkoutSession) Summary {
	summary := Summary{TotalSessions: int64(len(sessions))}
	if len(sessions) == 0 {
		return summary
	}

	var minutes int64
	for _, s := range sessions {
		summary.TotalVolume += s.TotalVolume
		if s.DurationMinutes != nil {
			minutes += *s.DurationMinutes
		}
	}
	avg := float64(minutes) / float64(len(sessions))
	summary.AverageDuration = math.Round(avg*10) / 10
	return summary
}

// NextStreak advances the consecutive-day workout streak for a workout
// on day, given the previous workout date. A second workout on the same
// day leaves the streak alone; a workout on the next calendar day
// extends it; anything else restarts at 1.
func NextStreak(last *time.Time, day time.Time, current, longest int64) (int64, int64) {
	day = truncateToDay(day)
	switch {
	case last == nil:
		current = 1
	case truncateToDay(*last).Equal(day):
		// unchanged
	case truncateToDay(*last).AddDate(0, 0, 1).Equal(day):
		current++
	default:
		current = 1
	}
	if current > longest {
		longest = current
	}
	return current, longest
}

// RoutineAverage folds one more session duration into a routine's
// running average, given the use count before this session.
func RoutineAverage(oldAvg, uses, duration int64) int64 {
	return (oldAvg*uses + duration) / (uses + 1)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
