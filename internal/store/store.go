// Package store fronts the database behind an explicit, injected interface.
package store

import (
	"context"
	"errors"
	"time"

	"zen-tracker-go/internal/models"
)

// Sentinel errors mapped to HTTP statuses at the handler layer.
var (
	// ErrNotFound indicates the requested user or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint violation (username taken).
	ErrDuplicate = errors.New("already exists")
)

// Range filters list queries by date and caps the result size.
// Nil bounds and a zero limit mean unfiltered.
type Range struct {
	Start *time.Time
	End   *time.Time
	Limit int
}

// Since builds a Range covering the trailing window starting at t.
func Since(t time.Time) Range {
	return Range{Start: &t}
}

// Store is the data-access surface used by the HTTP handlers. All per-day
// upserts must be atomic single writes keyed by (username, date).
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, username string) (*models.User, error)
	UpdateTheme(ctx context.Context, username, theme string) error
	UpdateLanguage(ctx context.Context, username, language string) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	UpdateStats(ctx context.Context, username string, stats models.Stats) error
	SaveRecoveryCodes(ctx context.Context, username string, codes models.RecoveryCodeList, generatedAt time.Time) error
	ResetPassword(ctx context.Context, username, passwordHash string, codes models.RecoveryCodeList) error
	RenameUser(ctx context.Context, oldUsername, newUsername string) error
	DeleteUser(ctx context.Context, username string) error

	CreateMeditation(ctx context.Context, s *models.MeditationSession) error
	ListMeditations(ctx context.Context, username string, r Range) ([]models.MeditationSession, error)

	UpsertEmotionLog(ctx context.Context, log *models.EmotionLog) error
	ListEmotionLogs(ctx context.Context, username string, r Range) ([]models.EmotionLog, error)

	UpsertPathLog(ctx context.Context, log *models.EightfoldPathLog) error
	ListPathLogs(ctx context.Context, username string, r Range) ([]models.EightfoldPathLog, error)

	UpsertGratitude(ctx context.Context, entry *models.GratitudeEntry) error
	ListGratitude(ctx context.Context, username string, r Range) ([]models.GratitudeEntry, error)
}
