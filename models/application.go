package models

import "time"

// Application is a residency application. The allocation result is stored
// denormalized on the row (AllocatedBlock/AllocatedRoom, empty until the
// allocation engine approves the application).
type Application struct {
	ID            uint     `gorm:"primaryKey"                   json:"id"`
	ApplicationID string   `gorm:"size:50;uniqueIndex;not null" json:"application_id"`
	StudentID     string   `gorm:"size:20;index;not null"       json:"student_id"`
	Category      Category `gorm:"size:20;not null"             json:"category"`
	Subcity       string   `gorm:"size:50"                      json:"subcity,omitempty"`
	Woreda        string   `gorm:"size:50"                      json:"woreda,omitempty"`

	// Document references from the upload layer. Only presence matters
	// here (medical doc drives priority).
	KebeleIDDoc      string `gorm:"size:255" json:"kebele_id_doc,omitempty"`
	SupportLetterDoc string `gorm:"size:255" json:"support_letter_doc,omitempty"`
	MedicalDoc       string `gorm:"size:255" json:"medical_doc,omitempty"`

	Status      string `gorm:"size:20;not null" json:"status"` // Pending/Verified/Rejected/Approved
	AdminRemark string `gorm:"type:text"        json:"admin_remark"`

	AllocatedBlock string `gorm:"size:50" json:"allocated_block,omitempty"`
	AllocatedRoom  string `gorm:"size:20" json:"allocated_room,omitempty"`

	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	DecidedBy   *uint      `json:"decided_by,omitempty"` // user id of the reviewing admin

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Allocated reports whether the engine has assigned a room.
func (a *Application) Allocated() bool {
	return a.AllocatedBlock != ""
}
