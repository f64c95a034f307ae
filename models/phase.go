package models

import "time"

// Phase is an admission window for one residency category. Dates are
// advisory; gating is by Status alone.
type Phase struct {
	ID        uint      `gorm:"primaryKey"                        json:"id"`
	Category  Category  `gorm:"size:20;not null"                  json:"category"`
	StartDate string    `gorm:"size:10"                           json:"start_date"` // YYYY-MM-DD
	EndDate   string    `gorm:"size:10"                           json:"end_date"`   // YYYY-MM-DD
	Status    string    `gorm:"size:20;not null;default:Inactive" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
