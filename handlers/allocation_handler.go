package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/models"
	"github.com/aastu-dms/DMSystem/services"
)

type AllocationHandler struct {
	alloc *services.AllocationService
}

func NewAllocationHandler(alloc *services.AllocationService) *AllocationHandler {
	return &AllocationHandler{alloc: alloc}
}

// POST /admin/allocations/run — triggers one batch allocation pass.
func (h *AllocationHandler) Run(c echo.Context) error {
	res, err := h.alloc.Run()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// GET /admin/allocations?gender=&block=
func (h *AllocationHandler) List(c echo.Context) error {
	gender, _ := models.NormalizeGender(c.QueryParam("gender"))
	rows, err := h.alloc.ListAllocations(gender, strings.TrimSpace(c.QueryParam("block")))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /student/allocations/me
func (h *AllocationHandler) My(c echo.Context) error {
	studentID := getStudentID(c)
	if studentID == "" {
		return jsonError(c, http.StatusUnauthorized, "MISSING_STUDENT_ID")
	}
	entry, err := h.alloc.StudentAllocation(studentID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"allocation": entry})
}
