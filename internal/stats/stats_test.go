package stats

import (
	"testing"
	"time"

	"github.com/fitlog/fitlog/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int64) *int64     { return &v }

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if got := DurationMinutes(start, nil); got != nil {
		t.Errorf("expected nil duration for open session, got %d", *got)
	}

	end := start.Add(45 * time.Minute)
	if got := DurationMinutes(start, &end); got == nil || *got != 45 {
		t.Errorf("expected 45 minutes, got %v", got)
	}

	// Partial minutes are floored, not rounded.
	end = start.Add(45*time.Minute + 59*time.Second)
	if got := DurationMinutes(start, &end); got == nil || *got != 45 {
		t.Errorf("expected 45 minutes for 45m59s, got %v", got)
	}
}

func TestSetVolume(t *testing.T) {
	if got := SetVolume(fptr(50), 10); got != 500 {
		t.Errorf("expected volume 500, got %v", got)
	}
	if got := SetVolume(nil, 20); got != 0 {
		t.Errorf("expected bodyweight set to contribute 0, got %v", got)
	}
}

func TestSessionTotals(t *testing.T) {
	sets := []models.ExerciseSet{
		{Reps: 10, WeightKg: fptr(50)},
		{Reps: 15, WeightKg: nil},
	}

	volume, count := SessionTotals(sets)
	if volume != 500 {
		t.Errorf("expected total volume 500, got %v", volume)
	}
	if count != 2 {
		t.Errorf("expected 2 sets, got %d", count)
	}

	volume, count = SessionTotals(nil)
	if volume != 0 || count != 0 {
		t.Errorf("expected zero totals for empty session, got %v/%d", volume, count)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalSessions != 0 || summary.TotalVolume != 0 || summary.AverageDuration != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarize(t *testing.T) {
	sessions := []models.WorkoutSession{
		{TotalVolume: 500, DurationMinutes: iptr(45)},
		{TotalVolume: 300, DurationMinutes: iptr(50)},
		{TotalVolume: 200, DurationMinutes: nil},
	}

	summary := Summarize(sessions)
	if summary.TotalSessions != 3 {
		t.Errorf("expected 3 sessions, got %d", summary.TotalSessions)
	}
	if summary.TotalVolume != 1000 {
		t.Errorf("expected total volume 1000, got %v", summary.TotalVolume)
	}
	// (45 + 50 + 0) / 3 = 31.666... rounds to 31.7
	if summary.AverageDuration != 31.7 {
		t.Errorf("expected average duration 31.7, got %v", summary.AverageDuration)
	}
}

func TestNextStreakFirstWorkout(t *testing.T) {
	day := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	current, longest := NextStreak(nil, day, 0, 0)
	if current != 1 || longest != 1 {
		t.Errorf("expected streak 1/1 after first workout, got %d/%d", current, longest)
	}
}

func TestNextStreakSameDay(t *testing.T) {
	last := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)

	current, longest := NextStreak(&last, day, 3, 5)
	if current != 3 || longest != 5 {
		t.Errorf("expected second workout on same day to leave streak at 3/5, got %d/%d", current, longest)
	}
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	last := time.Date(2026, 3, 2, 23, 50, 0, 0, time.UTC)
	day := time.Date(2026, 3, 3, 0, 10, 0, 0, time.UTC)

	current, longest := NextStreak(&last, day, 5, 5)
	if current != 6 || longest != 6 {
		t.Errorf("expected streak to extend to 6/6, got %d/%d", current, longest)
	}
}

func TestNextStreakBroken(t *testing.T) {
	last := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	current, longest := NextStreak(&last, day, 5, 8)
	if current != 1 {
		t.Errorf("expected broken streak to restart at 1, got %d", current)
	}
	if longest != 8 {
		t.Errorf("expected longest streak to stay at 8, got %d", longest)
	}
}

func TestRoutineAverage(t *testing.T) {
	if got := RoutineAverage(0, 0, 45); got != 45 {
		t.Errorf("expected first use to set average 45, got %d", got)
	}
	// (40*2 + 55) / 3 = 45
	if got := RoutineAverage(40, 2, 55); got != 45 {
		t.Errorf("expected average 45, got %d", got)
	}
}
