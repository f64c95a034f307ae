package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aastu-dms/DMSystem/models"
)

func TestEnsureAdminCreatesAccount(t *testing.T) {
	db := newTestDB(t)

	created, err := EnsureAdmin(db, "admin", "admin123")
	require.NoError(t, err)
	require.True(t, created)

	var u models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&u).Error)
	require.Equal(t, "admin", u.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("admin123")))
}

func TestEnsureAdminIdempotent(t *testing.T) {
	db := newTestDB(t)

	created, err := EnsureAdmin(db, "admin", "admin123")
	require.NoError(t, err)
	require.True(t, created)

	// A second run leaves the existing account untouched.
	created, err = EnsureAdmin(db, "admin", "different-pass")
	require.NoError(t, err)
	require.False(t, created)

	var u models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&u).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("admin123")))

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}
