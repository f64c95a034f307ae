package models

import "time"

// User is a login account. Username is the student id for students and the
// admin id for staff.
type User struct {
	ID        uint      `gorm:"primaryKey"                   json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null"            json:"-"` // bcrypt hash
	Role      string    `gorm:"size:20;not null"             json:"role"` // student|admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
