package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/models"
)

type PhaseService struct {
	db *gorm.DB
}

func NewPhaseService(db *gorm.DB) *PhaseService { return &PhaseService{db: db} }

// IsOpen reports whether applications are currently accepted for the
// category. True iff at least one phase of that category is Active; dates
// are advisory and never consulted.
func (s *PhaseService) IsOpen(category models.Category) (bool, error) {
	var n int64
	err := s.db.Model(&models.Phase{}).
		Where("category = ? AND status = ?", category, models.PhaseStatusActive).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create registers a phase. Phases are always born Inactive and opened
// explicitly via SetStatus.
func (s *PhaseService) Create(category models.Category, startDate, endDate string) (*models.Phase, error) {
	p := models.Phase{
		Category:  category,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    models.PhaseStatusInactive,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// SetStatus activates or deactivates a phase. Activating one phase
// deactivates every other phase of the same category, so at most one phase
// per category is Active; windows for different categories stay
// independent.
func (s *PhaseService) SetStatus(id uint, status string) (*models.Phase, error) {
	var p models.Phase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if status == models.PhaseStatusActive {
			if err := tx.Model(&models.Phase{}).
				Where("category = ? AND id <> ?", p.Category, p.ID).
				Update("status", models.PhaseStatusInactive).Error; err != nil {
				return err
			}
		}
		return tx.Model(&p).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PhaseService) List() ([]models.Phase, error) {
	var rows []models.Phase
	if err := s.db.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PhaseService) Delete(id uint) error {
	res := s.db.Delete(&models.Phase{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound lets handlers branch on missing rows without importing gorm.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
