package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/models"
)

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, studentID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":        sub,
		"role":       role,
		"student_id": studentID,
		"exp":        time.Now().Add(ttl).Unix(),
		"iat":        time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type registerReq struct {
	StudentID    string `json:"student_id"`
	FullName     string `json:"full_name"`
	Gender       string `json:"gender"`
	Department   string `json:"department"`
	AcademicYear int    `json:"academic_year"`
	Phone        string `json:"phone"`
	Category     string `json:"residence_category"`
	Password     string `json:"password"`
}

// POST /auth/register — creates the login account and the student profile
// together.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}

	req.StudentID = strings.TrimSpace(req.StudentID)
	req.FullName = strings.Join(strings.Fields(req.FullName), " ")
	if req.StudentID == "" || req.FullName == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "MISSING_FIELDS")
	}
	if len(req.Password) < 8 {
		return jsonError(c, http.StatusBadRequest, "PASSWORD_TOO_SHORT")
	}
	gender, ok := models.NormalizeGender(req.Gender)
	if !ok {
		return jsonError(c, http.StatusBadRequest, "INVALID_GENDER")
	}

	var dup models.User
	if err := database.DB.Where("username = ?", req.StudentID).First(&dup).Error; err == nil {
		return jsonError(c, http.StatusConflict, "ACCOUNT_EXISTS")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "REGISTRATION_FAILED")
	}
	var user models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Username: req.StudentID,
			Password: string(hash),
			Role:     "student",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student := models.Student{
			StudentID:         req.StudentID,
			FullName:          req.FullName,
			Gender:            gender,
			Department:        strings.TrimSpace(req.Department),
			AcademicYear:      req.AcademicYear,
			Phone:             strings.TrimSpace(req.Phone),
			ResidenceCategory: models.NormalizeCategory(req.Category),
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "REGISTRATION_FAILED")
	}
	return c.JSON(http.StatusCreated, map[string]any{"user_id": user.ID})
}

type loginReq struct {
	ID       string `json:"id"` // student id or admin id
	Password string `json:"password"`
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	id := strings.TrimSpace(req.ID)
	if id == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "MISSING_FIELDS")
	}

	var user models.User
	if err := database.DB.Where("username = ?", id).First(&user).Error; err != nil {
		return jsonError(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return jsonError(c, http.StatusUnauthorized, "INCORRECT_PASSWORD")
	}

	studentID := ""
	if user.Role == "student" {
		studentID = user.Username
	}
	token, err := h.signJWT(user.ID, user.Role, studentID, 24*time.Hour)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "TOKEN_SIGNING_FAILED")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
