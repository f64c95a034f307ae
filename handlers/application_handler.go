package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/services"
)

type ApplicationHandler struct {
	apps *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

type submitReq struct {
	Category      string `json:"category"`
	Subcity       string `json:"subcity"`
	Woreda        string `json:"woreda"`
	KebeleID      string `json:"kebele_id_doc"`
	SupportLetter string `json:"support_letter_doc"`
	MedicalDoc    string `json:"medical_doc"`
}

// POST /student/applications — document refs arrive from the upload layer
// as opaque strings.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	studentID := getStudentID(c)
	if studentID == "" {
		return jsonError(c, http.StatusUnauthorized, "MISSING_STUDENT_ID")
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	app, err := h.apps.Submit(services.SubmitInput{
		StudentID: studentID,
		Category:  req.Category,
		Subcity:   req.Subcity,
		Woreda:    req.Woreda,
		Documents: services.DocumentRefs{
			KebeleID:      req.KebeleID,
			SupportLetter: req.SupportLetter,
			MedicalDoc:    req.MedicalDoc,
		},
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, app)
}

// GET /student/applications/me
func (h *ApplicationHandler) My(c echo.Context) error {
	studentID := getStudentID(c)
	if studentID == "" {
		return jsonError(c, http.StatusUnauthorized, "MISSING_STUDENT_ID")
	}
	app, err := h.apps.Latest(studentID)
	if err != nil {
		return domainError(c, err)
	}
	status, err := h.apps.StudentStatus(studentID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"application": app, // null when the student never applied
		"status":      status,
	})
}

// GET /admin/applications?status=&category=
func (h *ApplicationHandler) List(c echo.Context) error {
	rows, err := h.apps.List(
		strings.TrimSpace(c.QueryParam("status")),
		strings.TrimSpace(c.QueryParam("category")),
	)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type verifyReq struct {
	Outcome string `json:"outcome"` // Verified | Rejected
	Remark  string `json:"remark"`
}

// PATCH /admin/applications/:id/verify
func (h *ApplicationHandler) Verify(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	var decidedBy *uint
	if uid, ok := getUserID(c); ok {
		decidedBy = &uid
	}
	app, err := h.apps.Verify(c.Param("id"), strings.TrimSpace(req.Outcome), req.Remark, decidedBy)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, app)
}
