package models

import "time"

// ScheduleOverride replaces the default opening ranges for one date with a
// single range, or closes the date. StartTime/EndTime are nil when closed.
type ScheduleOverride struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OverrideDate string  `gorm:"size:10;uniqueIndex;not null" json:"override_date"`
	StartTime    *string `gorm:"size:5" json:"start_time"`
	EndTime      *string `gorm:"size:5" json:"end_time"`
	IsClosed     bool    `gorm:"not null;default:false" json:"is_closed"`
	Reason       *string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
