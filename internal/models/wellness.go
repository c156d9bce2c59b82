package models

import "time"

// WellnessPlan is recomputed wholesale on every analysis run; the latest row
// per user is the active plan. Sub-scores live in [0,10].
type WellnessPlan struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"-"`
	MoodScore         float64   `gorm:"not null;default:0" json:"moodScore"`
	AnxietyScore      float64   `gorm:"not null;default:0" json:"anxietyScore"`
	StressScore       float64   `gorm:"not null;default:0" json:"stressScore"`
	SocialScore       float64   `gorm:"not null;default:0" json:"socialEngagementScore"`
	OverallScore      float64   `gorm:"not null;default:0" json:"overallWellnessScore"`
	RecommendReferral bool      `gorm:"not null;default:false" json:"recommendReferral"`
	Activities        []string  `gorm:"serializer:json" json:"recommendedActivities"`
	CreatedAt         time.Time `gorm:"not null" json:"createdAt"`
}
