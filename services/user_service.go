package services

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/models"
)

// EnsureAdmin creates an admin login account if none exists under the
// username. An existing account is left untouched, so the bootstrap can
// run on every deploy. Returns whether a new account was created.
func EnsureAdmin(db *gorm.DB, username, password string) (bool, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	var existing models.User
	err = db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !IsNotFound(err) {
		return false, err
	}

	u := models.User{
		Username: username,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&u).Error; err != nil {
		return false, err
	}
	return true, nil
}
