package models

import "strings"

// Closed enumerations. Raw strings from the outside world are normalized
// once at the boundary; nothing deeper in the system compares free text.

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// NormalizeGender maps free-text input onto the Gender enum.
// The second return is false when the input is not recognizable.
func NormalizeGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, true
	case "female", "f":
		return GenderFemale, true
	default:
		return "", false
	}
}

type Category string

const (
	CategoryRural      Category = "Rural"
	CategoryAddisAbaba Category = "AddisAbaba"
)

// NormalizeCategory maps free-text residency input onto the Category enum.
// Unrecognized values default to Rural, matching how submissions without a
// usable category have always been treated.
func NormalizeCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "addis ababa", "addisababa", "addis_ababa", "aa":
		return CategoryAddisAbaba
	case "rural":
		return CategoryRural
	default:
		return CategoryRural
	}
}

// Application statuses.
const (
	AppStatusPending  = "Pending"
	AppStatusVerified = "Verified"
	AppStatusRejected = "Rejected"
	AppStatusApproved = "Approved"
)

// Room statuses.
const (
	RoomStatusActive      = "Active"
	RoomStatusMaintenance = "Maintenance"
	RoomStatusInactive    = "Inactive"
)

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusActive, RoomStatusMaintenance, RoomStatusInactive:
		return true
	}
	return false
}

// Phase statuses.
const (
	PhaseStatusActive   = "Active"
	PhaseStatusInactive = "Inactive"
)

// Student-facing statuses, derived at read time from the latest
// application. Never stored on the student row.
const (
	StudentStatusNotApplied = "not_applied"
	StudentStatusPending    = "pending"
	StudentStatusVerified   = "verified"
	StudentStatusRejected   = "rejected"
	StudentStatusAllocated  = "allocated"
)
