package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/models"
	"github.com/aastu-dms/DMSystem/services"
)

type RoomHandler struct {
	rooms *services.RoomService
}

func NewRoomHandler(rooms *services.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

type roomPayload struct {
	BlockName  string `json:"block_name"`
	RoomNumber string `json:"room_number"`
	Capacity   int    `json:"capacity"`
	Gender     string `json:"gender"`
	Status     string `json:"status"`
}

func (p *roomPayload) normalize() {
	p.BlockName = strings.TrimSpace(p.BlockName)
	p.RoomNumber = strings.TrimSpace(p.RoomNumber)
	p.Status = strings.TrimSpace(p.Status)
}

func validateRoom(p *roomPayload) map[string]string {
	errs := map[string]string{}
	if p.BlockName == "" {
		errs["block_name"] = "block name is required"
	}
	if p.RoomNumber == "" {
		errs["room_number"] = "room number is required"
	}
	if p.Capacity <= 0 {
		errs["capacity"] = "capacity must be a positive integer"
	}
	if _, ok := models.NormalizeGender(p.Gender); !ok {
		errs["gender"] = "gender must be Male or Female"
	}
	if p.Status != "" && !models.ValidRoomStatus(p.Status) {
		errs["status"] = "status must be Active, Maintenance or Inactive"
	}
	return errs
}

// GET /admin/rooms?block=&status=&gender=
func (h *RoomHandler) List(c echo.Context) error {
	gender, _ := models.NormalizeGender(c.QueryParam("gender"))
	rows, err := h.rooms.List(
		strings.TrimSpace(c.QueryParam("block")),
		strings.TrimSpace(c.QueryParam("status")),
		gender,
	)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /admin/rooms
func (h *RoomHandler) Create(c echo.Context) error {
	var p roomPayload
	if err := c.Bind(&p); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	p.normalize()
	if errs := validateRoom(&p); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "fields": errs})
	}
	gender, _ := models.NormalizeGender(p.Gender)
	room, err := h.rooms.Create(services.RoomInput{
		BlockName:  p.BlockName,
		RoomNumber: p.RoomNumber,
		Capacity:   p.Capacity,
		Gender:     gender,
		Status:     p.Status,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// PUT /admin/rooms/:id
func (h *RoomHandler) Update(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return jsonError(c, http.StatusBadRequest, "INVALID_ID")
	}
	var p roomPayload
	if err := c.Bind(&p); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	p.normalize()
	if errs := validateRoom(&p); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "fields": errs})
	}
	gender, _ := models.NormalizeGender(p.Gender)
	room, err := h.rooms.Update(id, services.RoomInput{
		BlockName:  p.BlockName,
		RoomNumber: p.RoomNumber,
		Capacity:   p.Capacity,
		Gender:     gender,
		Status:     p.Status,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// DELETE /admin/rooms/:id
func (h *RoomHandler) Delete(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return jsonError(c, http.StatusBadRequest, "INVALID_ID")
	}
	if err := h.rooms.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
