package models

import (
	"time"
)

// Stats holds the per-user meditation aggregates maintained on every
// session submission.
type Stats struct {
	TotalSessions      int        `json:"totalSessions"`
	TotalMinutes       int        `json:"totalMinutes"`
	CurrentStreak      int        `json:"currentStreak"`
	LongestStreak      int        `json:"longestStreak"`
	LastMeditationDate *time.Time `json:"lastMeditationDate"`
}

// RecoveryCode is a single-use, bcrypt-hashed account recovery code.
type RecoveryCode struct {
	Code string `json:"code"`
	Used bool   `json:"used"`
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	Username     string `gorm:"uniqueIndex" json:"username"`
	PasswordHash string `json:"-"`
	Theme        string `gorm:"default:blue" json:"theme"`
	Language     string `gorm:"default:en" json:"language"`

	Stats Stats `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`

	RecoveryCodes            RecoveryCodeList `gorm:"type:jsonb" json:"-"`
	RecoveryCodesGeneratedAt *time.Time       `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
