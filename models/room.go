package models

import "time"

// Room is one dormitory room. Invariant: 0 <= CurrentOccupancy <= Capacity
// on every mutation; occupancy is only ever incremented through
// RoomService.ReserveSeat.
type Room struct {
	ID               uint      `gorm:"primaryKey"                                  json:"id"`
	BlockName        string    `gorm:"size:50;not null;uniqueIndex:idx_block_room" json:"block_name"`
	RoomNumber       string    `gorm:"size:20;not null;uniqueIndex:idx_block_room" json:"room_number"`
	Capacity         int       `gorm:"not null"                                    json:"capacity"`
	CurrentOccupancy int       `gorm:"not null;default:0"                          json:"current_occupancy"`
	Gender           Gender    `gorm:"size:10;not null"                            json:"gender"`
	Status           string    `gorm:"size:20;not null;default:Active"             json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
