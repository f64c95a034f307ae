package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/models"
	"github.com/aastu-dms/DMSystem/services"
)

type StudentHandler struct {
	apps *services.ApplicationService
}

func NewStudentHandler(apps *services.ApplicationService) *StudentHandler {
	return &StudentHandler{apps: apps}
}

// GET /student/me — profile plus the status projected from the latest
// application.
func (h *StudentHandler) Me(c echo.Context) error {
	studentID := getStudentID(c)
	if studentID == "" {
		return jsonError(c, http.StatusUnauthorized, "MISSING_STUDENT_ID")
	}
	var student models.Student
	if err := database.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		return jsonError(c, http.StatusNotFound, "STUDENT_NOT_FOUND")
	}
	status, err := h.apps.StudentStatus(studentID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"student": student,
		"status":  status,
	})
}

type studentUpdateReq struct {
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
	AcademicYear int    `json:"academic_year"`
	Phone        string `json:"phone"`
}

// PUT /student/me
func (h *StudentHandler) UpdateMe(c echo.Context) error {
	studentID := getStudentID(c)
	if studentID == "" {
		return jsonError(c, http.StatusUnauthorized, "MISSING_STUDENT_ID")
	}
	var req studentUpdateReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	var student models.Student
	if err := database.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		return jsonError(c, http.StatusNotFound, "STUDENT_NOT_FOUND")
	}
	updates := map[string]any{}
	if name := strings.Join(strings.Fields(req.FullName), " "); name != "" {
		updates["full_name"] = name
	}
	if dep := strings.TrimSpace(req.Department); dep != "" {
		updates["department"] = dep
	}
	if req.AcademicYear > 0 {
		updates["academic_year"] = req.AcademicYear
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		updates["phone"] = phone
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&student).Updates(updates).Error; err != nil {
			return jsonError(c, http.StatusBadRequest, "UPDATE_FAILED")
		}
	}
	return c.JSON(http.StatusOK, student)
}

// GET /admin/students
func (h *StudentHandler) List(c echo.Context) error {
	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	tx := database.DB.Model(&models.Student{})
	if dep := strings.TrimSpace(c.QueryParam("department")); dep != "" {
		tx = tx.Where("department = ?", dep)
	}
	if gender, ok := models.NormalizeGender(c.QueryParam("gender")); ok {
		tx = tx.Where("gender = ?", gender)
	}
	var rows []models.Student
	offset := (page - 1) * size
	if err := tx.Order("student_id").Offset(offset).Limit(size).Find(&rows).Error; err != nil {
		return jsonError(c, http.StatusBadRequest, "QUERY_FAILED")
	}
	return c.JSON(http.StatusOK, rows)
}
