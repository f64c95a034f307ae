package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/services"
)

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func paramUint(c echo.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func jsonError(c echo.Context, status int, code string) error {
	return c.JSON(status, map[string]any{"error": code})
}

// domainError maps service-layer errors onto HTTP responses in one place.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrPhaseClosed):
		return jsonError(c, http.StatusForbidden, "PHASE_CLOSED")
	case errors.Is(err, services.ErrDuplicateApplication):
		return jsonError(c, http.StatusConflict, "DUPLICATE_ACTIVE_APPLICATION")
	case errors.Is(err, services.ErrStudentNotFound):
		return jsonError(c, http.StatusNotFound, "STUDENT_NOT_FOUND")
	case errors.Is(err, services.ErrNotPending):
		return jsonError(c, http.StatusConflict, "NOT_PENDING")
	case errors.Is(err, services.ErrRemarkRequired):
		return jsonError(c, http.StatusBadRequest, "REJECT_REASON_REQUIRED")
	case errors.Is(err, services.ErrInvalidOutcome):
		return jsonError(c, http.StatusBadRequest, "INVALID_OUTCOME")
	case errors.Is(err, services.ErrRoomFull):
		return jsonError(c, http.StatusConflict, "ROOM_FULL")
	case errors.Is(err, services.ErrRoomOccupied):
		return jsonError(c, http.StatusConflict, "ROOM_OCCUPIED")
	case errors.Is(err, services.ErrRoomExists):
		return jsonError(c, http.StatusConflict, "ROOM_EXISTS")
	case errors.Is(err, services.ErrInvalidCapacity):
		return jsonError(c, http.StatusBadRequest, "INVALID_CAPACITY")
	case errors.Is(err, services.ErrCapacityBelowOcc):
		return jsonError(c, http.StatusBadRequest, "CAPACITY_BELOW_OCCUPANCY")
	case errors.Is(err, services.ErrCommitFailed):
		return jsonError(c, http.StatusInternalServerError, "ALLOCATION_COMMIT_FAILED")
	case services.IsNotFound(err):
		return jsonError(c, http.StatusNotFound, "NOT_FOUND")
	default:
		return jsonError(c, http.StatusInternalServerError, "INTERNAL_ERROR")
	}
}

func getUserID(c echo.Context) (uint, bool) {
	switch v := c.Get("user_id").(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	default:
		return 0, false
	}
}

func getStudentID(c echo.Context) string {
	s, _ := c.Get("student_id").(string)
	return s
}
