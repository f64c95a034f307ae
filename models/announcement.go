package models

import "time"

type Announcement struct {
	ID        uint      `gorm:"primaryKey"            json:"id"`
	Message   string    `gorm:"type:text;not null"    json:"message"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
