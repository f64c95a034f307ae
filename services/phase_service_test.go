package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aastu-dms/DMSystem/models"
)

func TestIsOpenDependsOnStatusOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewPhaseService(db)

	open, err := svc.IsOpen(models.CategoryRural)
	require.NoError(t, err)
	require.False(t, open, "no phases at all")

	// An inactive phase does not open the window, whatever its dates say.
	p, err := svc.Create(models.CategoryRural, "2000-01-01", "2099-12-31")
	require.NoError(t, err)
	require.Equal(t, models.PhaseStatusInactive, p.Status)

	open, err = svc.IsOpen(models.CategoryRural)
	require.NoError(t, err)
	require.False(t, open)

	_, err = svc.SetStatus(p.ID, models.PhaseStatusActive)
	require.NoError(t, err)

	open, err = svc.IsOpen(models.CategoryRural)
	require.NoError(t, err)
	require.True(t, open)

	// Other categories stay closed.
	open, err = svc.IsOpen(models.CategoryAddisAbaba)
	require.NoError(t, err)
	require.False(t, open)
}

func TestActivateDeactivatesSameCategoryOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewPhaseService(db)

	rural1, err := svc.Create(models.CategoryRural, "", "")
	require.NoError(t, err)
	rural2, err := svc.Create(models.CategoryRural, "", "")
	require.NoError(t, err)
	addis, err := svc.Create(models.CategoryAddisAbaba, "", "")
	require.NoError(t, err)

	_, err = svc.SetStatus(rural1.ID, models.PhaseStatusActive)
	require.NoError(t, err)
	_, err = svc.SetStatus(addis.ID, models.PhaseStatusActive)
	require.NoError(t, err)

	// Activating the second rural phase supersedes the first but leaves
	// the Addis Ababa window alone.
	_, err = svc.SetStatus(rural2.ID, models.PhaseStatusActive)
	require.NoError(t, err)

	var p models.Phase
	require.NoError(t, db.First(&p, rural1.ID).Error)
	require.Equal(t, models.PhaseStatusInactive, p.Status)
	p = models.Phase{}
	require.NoError(t, db.First(&p, rural2.ID).Error)
	require.Equal(t, models.PhaseStatusActive, p.Status)
	p = models.Phase{}
	require.NoError(t, db.First(&p, addis.ID).Error)
	require.Equal(t, models.PhaseStatusActive, p.Status)
}

func TestPhaseDeactivate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPhaseService(db)

	p, err := svc.Create(models.CategoryRural, "", "")
	require.NoError(t, err)
	_, err = svc.SetStatus(p.ID, models.PhaseStatusActive)
	require.NoError(t, err)
	_, err = svc.SetStatus(p.ID, models.PhaseStatusInactive)
	require.NoError(t, err)

	open, err := svc.IsOpen(models.CategoryRural)
	require.NoError(t, err)
	require.False(t, open)
}
