package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/models"
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService { return &RoomService{db: db} }

type RoomInput struct {
	BlockName  string
	RoomNumber string
	Capacity   int
	Gender     models.Gender
	Status     string
}

func (s *RoomService) Create(in RoomInput) (*models.Room, error) {
	if in.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	status := in.Status
	if status == "" {
		status = models.RoomStatusActive
	}
	var dup int64
	if err := s.db.Model(&models.Room{}).
		Where("block_name = ? AND room_number = ?", in.BlockName, in.RoomNumber).
		Count(&dup).Error; err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, ErrRoomExists
	}
	r := models.Room{
		BlockName:  strings.TrimSpace(in.BlockName),
		RoomNumber: strings.TrimSpace(in.RoomNumber),
		Capacity:   in.Capacity,
		Gender:     in.Gender,
		Status:     status,
	}
	if err := s.db.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// Update edits room attributes. Occupancy itself is not editable here;
// shrinking capacity below the current occupancy is refused so the
// occupancy invariant cannot be broken by an admin edit.
func (s *RoomService) Update(id uint, in RoomInput) (*models.Room, error) {
	if in.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	var r models.Room
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, err
	}
	if in.Capacity < r.CurrentOccupancy {
		return nil, ErrCapacityBelowOcc
	}
	updates := map[string]any{
		"block_name":  strings.TrimSpace(in.BlockName),
		"room_number": strings.TrimSpace(in.RoomNumber),
		"capacity":    in.Capacity,
		"gender":      in.Gender,
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}
	if err := s.db.Model(&r).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// Delete removes a room. A room holding live allocations can never be
// deleted.
func (s *RoomService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var r models.Room
		if err := tx.First(&r, id).Error; err != nil {
			return err
		}
		if r.CurrentOccupancy > 0 {
			return ErrRoomOccupied
		}
		return tx.Delete(&r).Error
	})
}

// List returns rooms filtered by block, status and gender (empty filter =
// no constraint).
func (s *RoomService) List(block, status string, gender models.Gender) ([]models.Room, error) {
	tx := s.db.Model(&models.Room{})
	if block != "" {
		tx = tx.Where("block_name = ?", block)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if gender != "" {
		tx = tx.Where("gender = ?", gender)
	}
	var rows []models.Room
	if err := tx.Order("block_name, room_number").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var r models.Room
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ReserveSeat claims one seat in the room. The guard and the increment are
// a single conditional UPDATE, so concurrent callers can never push
// occupancy past capacity; a plain read-then-write would race here.
func (s *RoomService) ReserveSeat(tx *gorm.DB, roomID uint) error {
	res := tx.Model(&models.Room{}).
		Where("id = ? AND current_occupancy < capacity", roomID).
		Update("current_occupancy", gorm.Expr("current_occupancy + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomFull
	}
	return nil
}
