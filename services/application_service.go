package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/models"
)

type ApplicationService struct {
	db     *gorm.DB
	phases *PhaseService

	// Serializes the duplicate check against the insert, so two
	// concurrent submissions by one student cannot both pass the check.
	submitMu sync.Mutex
}

func NewApplicationService(db *gorm.DB, phases *PhaseService) *ApplicationService {
	return &ApplicationService{db: db, phases: phases}
}

// DocumentRefs are opaque references handed over by the upload layer.
// Presence is all the core cares about.
type DocumentRefs struct {
	KebeleID      string
	SupportLetter string
	MedicalDoc    string
}

type SubmitInput struct {
	StudentID string
	Category  string // free text, normalized here
	Subcity   string
	Woreda    string
	Documents DocumentRefs
}

// Submit creates a Pending application for the student. Fails when the
// admission phase for the category is closed or the student already holds
// a non-Rejected application. A Rejected application never blocks
// resubmission.
func (s *ApplicationService) Submit(in SubmitInput) (*models.Application, error) {
	studentID := strings.TrimSpace(in.StudentID)

	var student models.Student
	if err := s.db.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if IsNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	category := models.NormalizeCategory(in.Category)
	if in.Category == "" && student.ResidenceCategory != "" {
		category = student.ResidenceCategory
	}

	open, err := s.phases.IsOpen(category)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrPhaseClosed
	}

	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	app := models.Application{
		ApplicationID:    newApplicationID(),
		StudentID:        studentID,
		Category:         category,
		Subcity:          strings.TrimSpace(in.Subcity),
		Woreda:           strings.TrimSpace(in.Woreda),
		KebeleIDDoc:      in.Documents.KebeleID,
		SupportLetterDoc: in.Documents.SupportLetter,
		MedicalDoc:       in.Documents.MedicalDoc,
		Status:           models.AppStatusPending,
		AdminRemark:      "Waiting for document review",
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.Application{}).
			Where("student_id = ? AND status <> ?", studentID, models.AppStatusRejected).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrDuplicateApplication
		}
		return tx.Create(&app).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func newApplicationID() string {
	return "APP-" + strings.ToUpper(uuid.NewString()[:8])
}

// Verify records the staff decision on a Pending application. Outcome is
// Verified or Rejected; a rejection must carry a remark.
func (s *ApplicationService) Verify(applicationID, outcome, remark string, decidedBy *uint) (*models.Application, error) {
	switch {
	case strings.EqualFold(outcome, models.AppStatusVerified):
		outcome = models.AppStatusVerified
	case strings.EqualFold(outcome, models.AppStatusRejected):
		outcome = models.AppStatusRejected
	default:
		return nil, ErrInvalidOutcome
	}
	remark = strings.TrimSpace(remark)
	if outcome == models.AppStatusRejected && remark == "" {
		return nil, ErrRemarkRequired
	}

	var app models.Application
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", applicationID).First(&app).Error; err != nil {
			return err
		}
		if app.Status != models.AppStatusPending {
			return ErrNotPending
		}
		now := time.Now()
		updates := map[string]any{
			"status":     outcome,
			"decided_at": &now,
		}
		if decidedBy != nil {
			updates["decided_by"] = *decidedBy
		}
		if remark != "" {
			updates["admin_remark"] = remark
		}
		return tx.Model(&app).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Approve commits one allocation onto a Verified, unallocated application.
// Called by the allocation engine inside its batch transaction. The status
// and allocation guards are part of the UPDATE itself so a snapshot gone
// stale under concurrent verification can never overwrite a rejection.
func (s *ApplicationService) Approve(tx *gorm.DB, appID uint, block, roomNumber string) error {
	res := tx.Model(&models.Application{}).
		Where("id = ? AND status = ? AND (allocated_block = '' OR allocated_block IS NULL)", appID, models.AppStatusVerified).
		Updates(map[string]any{
			"status":          models.AppStatusApproved,
			"allocated_block": block,
			"allocated_room":  roomNumber,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish the two contract violations for the caller.
		var app models.Application
		if err := tx.First(&app, appID).Error; err != nil {
			return err
		}
		if app.Allocated() {
			return ErrAlreadyAllocated
		}
		return ErrNotVerified
	}
	return nil
}

// ApplicationView is the read model for staff screens: application joined
// with the student profile, allocation included once approved.
type ApplicationView struct {
	ApplicationID string           `json:"application_id"`
	StudentID     string           `json:"student_id"`
	StudentName   string           `json:"student_name"`
	Gender        models.Gender    `json:"gender"`
	Department    string           `json:"department"`
	Category      models.Category  `json:"category"`
	Status        string           `json:"status"`
	AdminRemark   string           `json:"admin_remark"`
	Allocation    *AllocationEntry `json:"allocation"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}

type AllocationEntry struct {
	Block      string `json:"block"`
	RoomNumber string `json:"room_number"`
}

// List returns the application read model, optionally filtered by status
// and category.
func (s *ApplicationService) List(status, category string) ([]ApplicationView, error) {
	type row struct {
		models.Application
		FullName   string
		Gender     models.Gender
		Department string
	}
	tx := s.db.Model(&models.Application{}).
		Select("applications.*, students.full_name, students.gender, students.department").
		Joins("JOIN students ON students.student_id = applications.student_id")
	if status != "" {
		tx = tx.Where("applications.status = ?", status)
	}
	if category != "" {
		tx = tx.Where("applications.category = ?", models.NormalizeCategory(category))
	}
	var rows []row
	if err := tx.Order("applications.submitted_at DESC, applications.id DESC").Scan(&rows).Error; err != nil {
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

func allocationOf(a *models.Application) *AllocationEntry {
	if !a.Allocated() {
		return nil
	}
	return &AllocationEntry{Block: a.AllocatedBlock, RoomNumber: a.AllocatedRoom}
}

// Latest returns the student's most recent application, or nil.
func (s *ApplicationService) Latest(studentID string) (*models.Application, error) {
	var app models.Application
	err := s.db.Where("student_id = ?", studentID).
		Order("submitted_at DESC, id DESC").
		First(&app).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

// StudentStatus projects the student-facing status from the latest
// application. The application row is the single source of truth; nothing
// is stored on the student.
func (s *ApplicationService) StudentStatus(studentID string) (string, error) {
	app, err := s.Latest(studentID)
	if err != nil {
		return "", err
	}
	if app == nil {
		return models.StudentStatusNotApplied, nil
	}
	switch app.Status {
	case models.AppStatusPending:
		return models.StudentStatusPending, nil
	case models.AppStatusVerified:
		return models.StudentStatusVerified, nil
	case models.AppStatusRejected:
		return models.StudentStatusRejected, nil
	case models.AppStatusApproved:
		return models.StudentStatusAllocated, nil
	}
	return models.StudentStatusNotApplied, nil
}
