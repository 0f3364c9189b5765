package models

import "time"

// BlockedDate closes a whole calendar day. BlockedDate holds "YYYY-MM-DD".
type BlockedDate struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	BlockedDate string  `gorm:"size:10;uniqueIndex;not null" json:"blocked_date"`
	Reason      *string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (BlockedDate) TableName() string {
	return "blocked_dates"
}
