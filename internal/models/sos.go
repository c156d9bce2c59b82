package models

import "time"

// SOSEvent records a simulated check-in request to the trusted contact. No
// SMS is sent; the reference code lets support staff correlate reports.
type SOSEvent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"-"`
	ReferenceCode string    `gorm:"not null" json:"referenceCode"`
	ContactPhone  string    `gorm:"not null;default:''" json:"contactPhone"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
}
