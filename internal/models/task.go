package models

import "time"

const (
	TaskSourceRisk   = "risk"
	TaskSourcePlan   = "plan"
	TaskSourceCustom = "custom"
)

// DailyTask is scoped to one user and one calendar date. TaskKey is stable
// within a day so toggles address the same record the list was built from.
type DailyTask struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	UserID      uint       `gorm:"not null;uniqueIndex:uidx_daily_tasks_user_date_key" json:"-"`
	Date        time.Time  `gorm:"type:date;not null;uniqueIndex:uidx_daily_tasks_user_date_key" json:"date"`
	TaskKey     string     `gorm:"not null;uniqueIndex:uidx_daily_tasks_user_date_key" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Source      string     `gorm:"not null;default:risk" json:"source"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}
