package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/models"
	"github.com/aastu-dms/DMSystem/services"
)

type PhaseHandler struct {
	phases *services.PhaseService
}

func NewPhaseHandler(phases *services.PhaseService) *PhaseHandler {
	return &PhaseHandler{phases: phases}
}

type phasePayload struct {
	Category  string `json:"category"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, advisory
	EndDate   string `json:"end_date"`
}

// GET /admin/phases
func (h *PhaseHandler) List(c echo.Context) error {
	rows, err := h.phases.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /admin/phases — phases are created Inactive and opened explicitly.
func (h *PhaseHandler) Create(c echo.Context) error {
	var p phasePayload
	if err := c.Bind(&p); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	for _, d := range []string{p.StartDate, p.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return jsonError(c, http.StatusBadRequest, "INVALID_DATE")
		}
	}
	phase, err := h.phases.Create(models.NormalizeCategory(p.Category), p.StartDate, p.EndDate)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, phase)
}

// PATCH /admin/phases/:id/status
func (h *PhaseHandler) SetStatus(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return jsonError(c, http.StatusBadRequest, "INVALID_ID")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	status := strings.TrimSpace(body.Status)
	if !strings.EqualFold(status, models.PhaseStatusActive) && !strings.EqualFold(status, models.PhaseStatusInactive) {
		return jsonError(c, http.StatusBadRequest, "INVALID_STATUS")
	}
	if strings.EqualFold(status, models.PhaseStatusActive) {
		status = models.PhaseStatusActive
	} else {
		status = models.PhaseStatusInactive
	}
	phase, err := h.phases.SetStatus(id, status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, phase)
}

// DELETE /admin/phases/:id
func (h *PhaseHandler) Delete(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return jsonError(c, http.StatusBadRequest, "INVALID_ID")
	}
	if err := h.phases.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
