package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zen-tracker-go/internal/models"
)

// GormStore implements Store on postgres via gorm.
type GormStore struct {
	db *gorm.DB
}

// Open connects to postgres and returns the store.
func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// AutoMigrate creates or updates the schema for all models.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.MeditationSession{},
		&models.EmotionLog{},
		&models.EightfoldPathLog{},
		&models.GratitudeEntry{},
	)
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *GormStore) GetUser(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) updateUser(ctx context.Context, username string, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) UpdateTheme(ctx context.Context, username, theme string) error {
	return s.updateUser(ctx, username, map[string]any{"theme": theme})
}

func (s *GormStore) UpdateLanguage(ctx context.Context, username, language string) error {
	return s.updateUser(ctx, username, map[string]any{"language": language})
}

func (s *GormStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return s.updateUser(ctx, username, map[string]any{"password_hash": passwordHash})
}

func (s *GormStore) UpdateStats(ctx context.Context, username string, stats models.Stats) error {
	return s.updateUser(ctx, username, map[string]any{
		"stats_total_sessions":       stats.TotalSessions,
		"stats_total_minutes":        stats.TotalMinutes,
		"stats_current_streak":       stats.CurrentStreak,
		"stats_longest_streak":       stats.LongestStreak,
		"stats_last_meditation_date": stats.LastMeditationDate,
	})
}

func (s *GormStore) SaveRecoveryCodes(ctx context.Context, username string, codes models.RecoveryCodeList, generatedAt time.Time) error {
	return s.updateUser(ctx, username, map[string]any{
		"recovery_codes":              codes,
		"recovery_codes_generated_at": generatedAt,
	})
}

func (s *GormStore) ResetPassword(ctx context.Context, username, passwordHash string, codes models.RecoveryCodeList) error {
	return s.updateUser(ctx, username, map[string]any{
		"password_hash":  passwordHash,
		"recovery_codes": codes,
	})
}

// RenameUser propagates a username change across the user row and every log
// table in one transaction.
func (s *GormStore) RenameUser(ctx context.Context, oldUsername, newUsername string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("username = ?", oldUsername).Update("username", newUsername)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		for _, model := range []any{
			&models.MeditationSession{},
			&models.EmotionLog{},
			&models.EightfoldPathLog{},
			&models.GratitudeEntry{},
		} {
			if err := tx.Model(model).Where("username = ?", oldUsername).Update("username", newUsername).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeleteUser removes the user and all owned logs in one transaction.
func (s *GormStore) DeleteUser(ctx context.Context, username string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("username = ?", username).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		for _, model := range []any{
			&models.MeditationSession{},
			&models.EmotionLog{},
			&models.EightfoldPathLog{},
			&models.GratitudeEntry{},
		} {
			if err := tx.Where("username = ?", username).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

func (s *GormStore) CreateMeditation(ctx context.Context, m *models.MeditationSession) error {
	return translateNil(s.db.WithContext(ctx).Create(m).Error)
}

func (s *GormStore) ListMeditations(ctx context.Context, username string, r Range) ([]models.MeditationSession, error) {
	var sessions []models.MeditationSession
	q := s.ranged(ctx, username, r)
	if err := q.Order("date desc").Find(&sessions).Error; err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}

// upsertConflict lists the columns rewritten when a per-day record already
// exists; the conflict target is always (username, date).
func upsertConflict(columns ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}
}

func (s *GormStore) UpsertEmotionLog(ctx context.Context, log *models.EmotionLog) error {
	conflict := upsertConflict("emotions", "positive_count", "negative_count", "pn_ratio", "updated_at")
	return translateNil(s.db.WithContext(ctx).Clauses(conflict).Create(log).Error)
}

func (s *GormStore) ListEmotionLogs(ctx context.Context, username string, r Range) ([]models.EmotionLog, error) {
	var logs []models.EmotionLog
	if err := s.ranged(ctx, username, r).Order("date desc").Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (s *GormStore) UpsertPathLog(ctx context.Context, log *models.EightfoldPathLog) error {
	conflict := upsertConflict("paths", "completed_count", "progress_percentage", "updated_at")
	return translateNil(s.db.WithContext(ctx).Clauses(conflict).Create(log).Error)
}

func (s *GormStore) ListPathLogs(ctx context.Context, username string, r Range) ([]models.EightfoldPathLog, error) {
	var logs []models.EightfoldPathLog
	if err := s.ranged(ctx, username, r).Order("date desc").Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (s *GormStore) UpsertGratitude(ctx context.Context, entry *models.GratitudeEntry) error {
	conflict := upsertConflict("text", "updated_at")
	return translateNil(s.db.WithContext(ctx).Clauses(conflict).Create(entry).Error)
}

func (s *GormStore) ListGratitude(ctx context.Context, username string, r Range) ([]models.GratitudeEntry, error) {
	var entries []models.GratitudeEntry
	if err := s.ranged(ctx, username, r).Order("date desc").Find(&entries).Error; err != nil {
		return nil, translate(err)
	}
	return entries, nil
}

func (s *GormStore) ranged(ctx context.Context, username string, r Range) *gorm.DB {
	q := s.db.WithContext(ctx).Where("username = ?", username)
	if r.Start != nil {
		q = q.Where("date >= ?", *r.Start)
	}
	if r.End != nil {
		q = q.Where("date <= ?", *r.End)
	}
	if r.Limit > 0 {
		q = q.Limit(r.Limit)
	}
	return q
}

func translateNil(err error) error {
	if err != nil {
		return translate(err)
	}
	return nil
}
