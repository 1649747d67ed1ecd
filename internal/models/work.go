package models

import "time"

// WorkExperience is an employment history record. It is read-only through
// the API and listed in reverse chronological order; start and end dates
// are "YYYY-MM" strings compared lexically.
type WorkExperience struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Company     string    `gorm:"not null" json:"company"`
	Role        string    `gorm:"not null" json:"role"`
	StartDate   string    `gorm:"not null" json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
