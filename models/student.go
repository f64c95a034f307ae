package models

import "time"

type Student struct {
	ID                uint      `gorm:"primaryKey"                   json:"id"`
	StudentID         string    `gorm:"size:20;uniqueIndex;not null" json:"student_id"`
	FullName          string    `gorm:"size:100;not null"            json:"full_name"`
	Gender            Gender    `gorm:"size:10;not null"             json:"gender"`
	Department        string    `gorm:"size:100"                     json:"department"`
	AcademicYear      int       `json:"academic_year"`
	Phone             string    `gorm:"size:20"                      json:"phone"`
	ResidenceCategory Category  `gorm:"size:20"                      json:"residence_category"`
	ProfilePicture    string    `gorm:"size:255"                     json:"profile_picture,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
