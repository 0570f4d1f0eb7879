package models

import "time"

// EmotionLog is the emotion record for one (username, calendar day).
// Date is truncated to midnight; resubmission for the same day overwrites.
type EmotionLog struct {
	ID            uint        `gorm:"primaryKey" json:"-"`
	Username      string      `gorm:"uniqueIndex:idx_emotion_user_date" json:"username"`
	Date          time.Time   `gorm:"uniqueIndex:idx_emotion_user_date" json:"date"`
	Emotions      EmotionList `gorm:"type:jsonb" json:"emotions"`
	PositiveCount int         `json:"positiveCount"`
	NegativeCount int         `json:"negativeCount"`
	PNRatio       float64     `json:"pnRatio"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// EightfoldPathLog is the path-tracker record for one (username, calendar day).
type EightfoldPathLog struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	Username           string    `gorm:"uniqueIndex:idx_path_user_date" json:"username"`
	Date               time.Time `gorm:"uniqueIndex:idx_path_user_date" json:"date"`
	Paths              PathList  `gorm:"type:jsonb" json:"paths"`
	CompletedCount     int       `json:"completedCount"`
	ProgressPercentage int       `json:"progressPercentage"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// GratitudeEntry is the gratitude note for one (username, calendar day).
type GratitudeEntry struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	Username string    `gorm:"uniqueIndex:idx_gratitude_user_date" json:"username"`
	Date     time.Time `gorm:"uniqueIndex:idx_gratitude_user_date" json:"date"`
	Text     string    `json:"text"`

	UpdatedAt time.Time `json:"updatedAt"`
}
