package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zen-tracker-go/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestApplySessionFirstEver(t *testing.T) {
	s := ApplySession(models.Stats{}, day(1), 20, day(1))
	require.Equal(t, 1, s.TotalSessions)
	require.Equal(t, 20, s.TotalMinutes)
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, 1, s.LongestStreak)
	require.NotNil(t, s.LastMeditationDate)
	require.Equal(t, day(1), *s.LastMeditationDate)
}

func TestApplySessionSequence(t *testing.T) {
	// day0, day0+1, day0+3: streaks [1, 2, 1], longest [1, 2, 2].
	s := ApplySession(models.Stats{}, day(1), 20, day(1))
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, 1, s.LongestStreak)

	s = ApplySession(s, day(2), 15, day(2))
	require.Equal(t, 2, s.CurrentStreak)
	require.Equal(t, 2, s.LongestStreak)

	s = ApplySession(s, day(4), 10, day(4))
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, 2, s.LongestStreak)

	require.Equal(t, 3, s.TotalSessions)
	require.Equal(t, 45, s.TotalMinutes)
}

func TestApplySessionSameDayKeepsStreak(t *testing.T) {
	s := ApplySession(models.Stats{}, day(1), 20, day(1))
	s = ApplySession(s, day(2), 15, day(2))

	s = ApplySession(s, day(2), 5, day(2))
	require.Equal(t, 2, s.CurrentStreak)
	require.Equal(t, 2, s.LongestStreak)
	require.Equal(t, 3, s.TotalSessions)
	require.Equal(t, 40, s.TotalMinutes)
}

func TestApplySessionLongestStreakMonotonic(t *testing.T) {
	var s models.Stats
	for d := 1; d <= 5; d++ {
		s = ApplySession(s, day(d), 10, day(d))
	}
	require.Equal(t, 5, s.LongestStreak)

	s = ApplySession(s, day(10), 10, day(10))
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, 5, s.LongestStreak)
}

func TestApplySessionBackdatedResetsStreak(t *testing.T) {
	// A session submitted with "today" before the stored anchor hits the
	// reset branch, and the anchor moves to the submitted date.
	s := ApplySession(models.Stats{}, day(10), 20, day(10))
	s = ApplySession(s, day(5), 10, day(5))
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, day(5), *s.LastMeditationDate)
}

func TestApplySessionAnchorIsSessionDateNotToday(t *testing.T) {
	s := ApplySession(models.Stats{}, day(3), 20, day(8))
	require.Equal(t, day(3), *s.LastMeditationDate)
}

func TestDayStartTruncates(t *testing.T) {
	ts := time.Date(2026, 3, 7, 17, 42, 9, 123, time.UTC)
	require.Equal(t, day(7), DayStart(ts))
}
