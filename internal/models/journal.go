package models

import "time"

const (
	MoodSad     = "sad"
	MoodNeutral = "neutral"
	MoodHappy   = "happy"
)

type JournalEntry struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"-"`
	Content        string    `gorm:"not null" json:"content"`
	Mood           string    `gorm:"not null;default:''" json:"mood,omitempty"`
	SentimentScore *float64  `json:"sentimentScore,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
}

func IsValidMood(mood string) bool {
	switch mood {
	case "", MoodSad, MoodNeutral, MoodHappy:
		return true
	}
	return false
}
