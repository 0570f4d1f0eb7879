// Package stats holds the numeric core: streak updates, emotion and
// Eightfold Path aggregation, and the meditation/emotion correlation join.
// Everything here is pure computation over already-fetched rows.
package stats

import (
	"time"

	"zen-tracker-go/internal/models"
)

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ApplySession folds a new meditation session into the user's aggregates.
// The streak compares today (midnight-truncated) against the previous
// lastMeditationDate: same day keeps the streak, a one-day gap extends it,
// anything else resets to 1. The stored anchor becomes the submitted session
// date, so a backdated session shifts the anchor and resets the streak.
func ApplySession(s models.Stats, sessionDate time.Time, minutes int, now time.Time) models.Stats {
	s.TotalSessions++
	s.TotalMinutes += minutes

	today := DayStart(now)
	if s.LastMeditationDate == nil {
		s.CurrentStreak = 1
	} else {
		last := DayStart(*s.LastMeditationDate)
		diffDays := int(today.Sub(last).Hours() / 24)
		switch diffDays {
		case 0:
			// second session same day, streak unchanged
		case 1:
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	d := sessionDate
	s.LastMeditationDate = &d
	return s
}
