package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/models"
)

// newTestDB opens an in-memory SQLite database with the full schema. One
// connection only, so every query sees the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, studentID string, gender models.Gender, category models.Category) *models.Student {
	t.Helper()
	s := &models.Student{
		StudentID:         studentID,
		FullName:          "Student " + studentID,
		Gender:            gender,
		Department:        "Engineering",
		AcademicYear:      2,
		ResidenceCategory: category,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedRoom(t *testing.T, db *gorm.DB, block, number string, capacity, occupancy int, gender models.Gender, status string) *models.Room {
	t.Helper()
	r := &models.Room{
		BlockName:        block,
		RoomNumber:       number,
		Capacity:         capacity,
		CurrentOccupancy: occupancy,
		Gender:           gender,
		Status:           status,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

type appSeed struct {
	studentID   string
	category    models.Category
	status      string
	medicalDoc  string
	submittedAt time.Time
}

func seedApplication(t *testing.T, db *gorm.DB, seed appSeed) *models.Application {
	t.Helper()
	if seed.submittedAt.IsZero() {
		seed.submittedAt = time.Now()
	}
	a := &models.Application{
		ApplicationID: newApplicationID(),
		StudentID:     seed.studentID,
		Category:      seed.category,
		MedicalDoc:    seed.medicalDoc,
		Status:        seed.status,
		SubmittedAt:   seed.submittedAt,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func activatePhase(t *testing.T, db *gorm.DB, category models.Category) *models.Phase {
	t.Helper()
	p := &models.Phase{Category: category, Status: models.PhaseStatusActive}
	require.NoError(t, db.Create(p).Error)
	return p
}

func reloadApp(t *testing.T, db *gorm.DB, id uint) *models.Application {
	t.Helper()
	var a models.Application
	require.NoError(t, db.First(&a, id).Error)
	return &a
}

func reloadRoom(t *testing.T, db *gorm.DB, id uint) *models.Room {
	t.Helper()
	var r models.Room
	require.NoError(t, db.First(&r, id).Error)
	return &r
}
