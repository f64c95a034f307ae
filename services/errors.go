package services

import "errors"

// Domain-level errors. Handlers translate these to HTTP statuses; the
// services themselves never speak HTTP.
var (
	// Submission.
	ErrPhaseClosed          = errors.New("phase_closed")
	ErrDuplicateApplication = errors.New("duplicate_active_application")
	ErrStudentNotFound      = errors.New("student_not_found")

	// Verification.
	ErrNotPending     = errors.New("application_not_pending")
	ErrRemarkRequired = errors.New("remark_required")
	ErrInvalidOutcome = errors.New("invalid_verification_outcome")

	// Allocation commit guards. These should never fire under correct
	// engine use but protect against stale snapshots.
	ErrNotVerified      = errors.New("application_not_verified")
	ErrAlreadyAllocated = errors.New("application_already_allocated")

	// Room registry.
	ErrRoomFull         = errors.New("room_full")
	ErrRoomOccupied     = errors.New("room_occupied")
	ErrRoomExists       = errors.New("room_exists")
	ErrInvalidCapacity  = errors.New("invalid_capacity")
	ErrCapacityBelowOcc = errors.New("capacity_below_occupancy")

	// Engine.
	ErrCommitFailed = errors.New("allocation_commit_failed")
)
