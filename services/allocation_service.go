package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/models"
)

// AllocationService is the allocation engine: a synchronous batch that
// matches Verified applications to rooms under gender and priority rules
// and commits the whole batch in one transaction.
type AllocationService struct {
	db    *gorm.DB
	rooms *RoomService
	apps  *ApplicationService

	// Serializes runs. Two concurrent invocations must never both be
	// mutating room/application state.
	runMu sync.Mutex
}

func NewAllocationService(db *gorm.DB, rooms *RoomService, apps *ApplicationService) *AllocationService {
	return &AllocationService{db: db, rooms: rooms, apps: apps}
}

type RunResult struct {
	AssignedCount     int    `json:"assigned_count"`
	MaleAllocations   int    `json:"male_allocations"`
	FemaleAllocations int    `json:"female_allocations"`
	Message           string `json:"message"`
}

type candidate struct {
	AppID       uint
	StudentID   string
	Category    models.Category
	MedicalDoc  string
	Gender      models.Gender
	SubmittedAt time.Time
}

type assignment struct {
	appID      uint
	roomID     uint
	block      string
	roomNumber string
	gender     models.Gender
}

// Run executes one allocation pass. Already-allocated applications are
// never candidates, so re-running after a successful pass is a no-op for
// them. Either every recorded assignment commits or none does.
func (s *AllocationService) Run() (*RunResult, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	logrus.Info("allocation: starting run")

	candidates, err := s.snapshotCandidates()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		logrus.Info("allocation: no verified students to allocate")
		return &RunResult{Message: "No pending verified students to allocate."}, nil
	}

	rooms, err := s.snapshotRooms()
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		logrus.Info("allocation: no rooms with spare capacity")
		return &RunResult{Message: "No available rooms found."}, nil
	}

	assignments := match(candidates, rooms)
	if len(assignments) == 0 {
		return &RunResult{Message: "No matching seats for the current candidates."}, nil
	}

	if err := s.commit(assignments); err != nil {
		logrus.WithError(err).Error("allocation: commit failed, batch rolled back")
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	res := &RunResult{AssignedCount: len(assignments)}
	for _, a := range assignments {
		if a.gender == models.GenderMale {
			res.MaleAllocations++
		} else {
			res.FemaleAllocations++
		}
	}
	res.Message = fmt.Sprintf("Successfully allocated %d students.", res.AssignedCount)
	logrus.WithFields(logrus.Fields{
		"assigned": res.AssignedCount,
		"male":     res.MaleAllocations,
		"female":   res.FemaleAllocations,
	}).Info("allocation: run finished")
	return res, nil
}

// snapshotCandidates loads Verified, unallocated applications joined with
// the student's gender, ordered by submission time then id. The ordering
// is the deterministic tie-break inside each priority tier.
func (s *AllocationService) snapshotCandidates() ([]candidate, error) {
	var rows []candidate
	err := s.db.Model(&models.Application{}).
		Select("applications.id AS app_id, applications.student_id, applications.category, applications.medical_doc, applications.submitted_at, students.gender").
		Joins("JOIN students ON students.student_id = applications.student_id").
		Where("applications.status = ? AND (applications.allocated_block = '' OR applications.allocated_block IS NULL)", models.AppStatusVerified).
		Order("applications.submitted_at ASC, applications.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *AllocationService) snapshotRooms() ([]models.Room, error) {
	var rows []models.Room
	err := s.db.
		Where("status = ? AND current_occupancy < capacity", models.RoomStatusActive).
		Order("block_name, room_number").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// tierOf buckets a candidate: 0 rural, 1 Addis Ababa with a medical
// document, 2 everyone else. Tiers are drained in that fixed order.
func tierOf(c candidate) int {
	switch {
	case c.Category == models.CategoryRural:
		return 0
	case c.Category == models.CategoryAddisAbaba && c.MedicalDoc != "":
		return 1
	default:
		return 2
	}
}

// match walks the tiers in priority order and assigns each candidate the
// first room of their gender with remaining capacity. Remaining capacity
// is tracked locally so one run cannot over-fill a room; candidates left
// without a seat simply stay Verified.
func match(candidates []candidate, rooms []models.Room) []assignment {
	remaining := make([]int, len(rooms))
	for i, r := range rooms {
		remaining[i] = r.Capacity - r.CurrentOccupancy
	}

	var tiers [3][]candidate
	for _, c := range candidates {
		t := tierOf(c)
		tiers[t] = append(tiers[t], c)
	}

	var out []assignment
	for _, tier := range tiers {
		for _, c := range tier {
			for i, r := range rooms {
				if r.Gender != c.Gender || remaining[i] <= 0 {
					continue
				}
				remaining[i]--
				out = append(out, assignment{
					appID:      c.AppID,
					roomID:     r.ID,
					block:      r.BlockName,
					roomNumber: r.RoomNumber,
					gender:     c.Gender,
				})
				break
			}
		}
	}
	return out
}

// commit applies the batch inside one transaction. ReserveSeat re-checks
// capacity and Approve re-checks application state, so anything that went
// stale between snapshot and commit fails the batch and rolls everything
// back.
func (s *AllocationService) commit(assignments []assignment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, a := range assignments {
			if err := s.rooms.ReserveSeat(tx, a.roomID); err != nil {
				return err
			}
			if err := s.apps.Approve(tx, a.appID, a.block, a.roomNumber); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListAllocations returns the allocation read model, optionally filtered
// by student gender and block.
func (s *AllocationService) ListAllocations(gender models.Gender, block string) ([]ApplicationView, error) {
	type row struct {
		models.Application
		FullName   string
		Gender     models.Gender
		Department string
	}
	tx := s.db.Model(&models.Application{}).
		Select("applications.*, students.full_name, students.gender, students.department").
		Joins("JOIN students ON students.student_id = applications.student_id").
		Where("applications.status = ?", models.AppStatusApproved)
	if gender != "" {
		tx = tx.Where("students.gender = ?", gender)
	}
	if block != "" {
		tx = tx.Where("applications.allocated_block = ?", block)
	}
	var rows []row
	if err := tx.Order("applications.allocated_block, applications.allocated_room").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ApplicationView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ApplicationView{
			ApplicationID: r.ApplicationID,
			StudentID:     r.Application.StudentID,
			StudentName:   r.FullName,
			Gender:        r.Gender,
			Department:    r.Department,
			Category:      r.Category,
			Status:        r.Status,
			AdminRemark:   r.AdminRemark,
			Allocation:    allocationOf(&r.Application),
			SubmittedAt:   r.SubmittedAt,
		})
	}
	return out, nil
}

// StudentAllocation returns the allocation for one student, or nil when
// they have none.
func (s *AllocationService) StudentAllocation(studentID string) (*AllocationEntry, error) {
	var app models.Application
	err := s.db.
		Where("student_id = ? AND status = ?", studentID, models.AppStatusApproved).
		Order("submitted_at DESC, id DESC").
		First(&app).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return allocationOf(&app), nil
}
