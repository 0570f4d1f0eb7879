package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zen-tracker-go/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC)
}

func seedUser(t *testing.T, m *MemoryStore, name string) {
	t.Helper()
	require.NoError(t, m.CreateUser(context.Background(), &models.User{Username: name, Theme: "blue", Language: "en"}))
}

func TestCreateUserDuplicate(t *testing.T) {
	m := NewMemoryStore()
	seedUser(t, m, "alice")
	err := m.CreateUser(context.Background(), &models.User{Username: "alice"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestGetUserNotFound(t *testing.T) {
	m := NewMemoryStore()
	_, err := m.GetUser(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertEmotionLogIdempotentByDay(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	seedUser(t, m, "alice")

	first := &models.EmotionLog{Username: "alice", Date: day(1), PNRatio: 0.5}
	require.NoError(t, m.UpsertEmotionLog(ctx, first))
	second := &models.EmotionLog{Username: "alice", Date: day(1), PNRatio: 0.8}
	require.NoError(t, m.UpsertEmotionLog(ctx, second))

	logs, err := m.ListEmotionLogs(ctx, "alice", Range{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, 0.8, logs[0].PNRatio)
}

func TestListMeditationsRangeAndLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	seedUser(t, m, "alice")

	for d := 1; d <= 5; d++ {
		require.NoError(t, m.CreateMeditation(ctx, &models.MeditationSession{
			Username: "alice", Date: day(d), Duration: d * 10,
		}))
	}

	start := day(2)
	end := day(4)
	sessions, err := m.ListMeditations(ctx, "alice", Range{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	require.Equal(t, day(4), sessions[0].Date)

	sessions, err = m.ListMeditations(ctx, "alice", Range{Limit: 2})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, day(5), sessions[0].Date)
}

func TestRenameUserMovesAllRecords(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	seedUser(t, m, "alice")

	require.NoError(t, m.CreateMeditation(ctx, &models.MeditationSession{Username: "alice", Date: day(1)}))
	require.NoError(t, m.UpsertEmotionLog(ctx, &models.EmotionLog{Username: "alice", Date: day(1)}))
	require.NoError(t, m.UpsertPathLog(ctx, &models.EightfoldPathLog{Username: "alice", Date: day(1)}))
	require.NoError(t, m.UpsertGratitude(ctx, &models.GratitudeEntry{Username: "alice", Date: day(1), Text: "tea"}))

	require.NoError(t, m.RenameUser(ctx, "alice", "bodhi"))

	_, err := m.GetUser(ctx, "alice")
	require.ErrorIs(t, err, ErrNotFound)
	u, err := m.GetUser(ctx, "bodhi")
	require.NoError(t, err)
	require.Equal(t, "bodhi", u.Username)

	sessions, err := m.ListMeditations(ctx, "bodhi", Range{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "bodhi", sessions[0].Username)

	logs, err := m.ListEmotionLogs(ctx, "bodhi", Range{})
	require.NoError(t, err)
	require.Len(t, logs, 1)

	entries, err := m.ListGratitude(ctx, "bodhi", Range{})
	require.NoError(t, err)
	require.Equal(t, "bodhi", entries[0].Username)
}

func TestRenameUserConflict(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	seedUser(t, m, "alice")
	seedUser(t, m, "bodhi")
	require.ErrorIs(t, m.RenameUser(ctx, "alice", "bodhi"), ErrDuplicate)
}

func TestDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	seedUser(t, m, "alice")
	require.NoError(t, m.CreateMeditation(ctx, &models.MeditationSession{Username: "alice", Date: day(1)}))
	require.NoError(t, m.UpsertEmotionLog(ctx, &models.EmotionLog{Username: "alice", Date: day(1)}))

	require.NoError(t, m.DeleteUser(ctx, "alice"))

	_, err := m.GetUser(ctx, "alice")
	require.ErrorIs(t, err, ErrNotFound)
	sessions, err := m.ListMeditations(ctx, "alice", Range{})
	require.NoError(t, err)
	require.Empty(t, sessions)
}

func TestUpdateStats(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	seedUser(t, m, "alice")

	last := day(3)
	require.NoError(t, m.UpdateStats(ctx, "alice", models.Stats{
		TotalSessions: 2, TotalMinutes: 35, CurrentStreak: 2, LongestStreak: 2, LastMeditationDate: &last,
	}))

	u, err := m.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, u.Stats.TotalSessions)
	require.Equal(t, 35, u.Stats.TotalMinutes)
	require.Equal(t, day(3), *u.Stats.LastMeditationDate)
}
