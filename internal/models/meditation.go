package models

import "time"

// MeditationSession is append-only: there is no update or delete route.
type MeditationSession struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"index" json:"username"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
	Notes    string    `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
