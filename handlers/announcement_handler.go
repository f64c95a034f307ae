package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/models"
)

type AnnouncementHandler struct{}

func NewAnnouncementHandler() *AnnouncementHandler { return &AnnouncementHandler{} }

// GET /announcements/active — latest active announcements, newest first.
func (h *AnnouncementHandler) Active(c echo.Context) error {
	var rows []models.Announcement
	err := database.DB.Where("is_active = ?", true).
		Order("created_at DESC, id DESC").Limit(10).Find(&rows).Error
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "QUERY_FAILED")
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /admin/announcements
func (h *AnnouncementHandler) List(c echo.Context) error {
	var rows []models.Announcement
	if err := database.DB.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return jsonError(c, http.StatusBadRequest, "QUERY_FAILED")
	}
	return c.JSON(http.StatusOK, rows)
}

type announcementReq struct {
	Message  string `json:"message"`
	IsActive *bool  `json:"is_active"`
}

// POST /admin/announcements
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req announcementReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return jsonError(c, http.StatusBadRequest, "MESSAGE_REQUIRED")
	}
	rec := models.Announcement{Message: msg, IsActive: true}
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return jsonError(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, rec)
}

// PATCH /admin/announcements/:id
func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return jsonError(c, http.StatusBadRequest, "INVALID_ID")
	}
	var rec models.Announcement
	if err := database.DB.First(&rec, id).Error; err != nil {
		return jsonError(c, http.StatusNotFound, "NOT_FOUND")
	}
	var req announcementReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	updates := map[string]any{}
	if msg := strings.TrimSpace(req.Message); msg != "" {
		updates["message"] = msg
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&rec).Updates(updates).Error; err != nil {
			return jsonError(c, http.StatusBadRequest, "UPDATE_FAILED")
		}
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /admin/announcements/:id
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return jsonError(c, http.StatusBadRequest, "INVALID_ID")
	}
	res := database.DB.Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return jsonError(c, http.StatusBadRequest, "DELETE_FAILED")
	}
	if res.RowsAffected == 0 {
		return jsonError(c, http.StatusNotFound, "NOT_FOUND")
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
