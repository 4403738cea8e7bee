package hotel

import "errors"

// Precondition and lookup failures surfaced to the shell. Each violated guard
// has its own sentinel so the caller can show a specific message.
var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnavailable      = errors.New("room is not available")
	ErrInvalidDates         = errors.New("check-out date must be after check-in date")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrAlreadyCheckedIn     = errors.New("guest is already checked in")
	ErrAlreadyCheckedOut    = errors.New("reservation has already been checked out")
	ErrReservationCancelled = errors.New("reservation has been cancelled")
	ErrNotCheckedIn         = errors.New("guest is not checked in")
	ErrAlreadyCancelled     = errors.New("reservation is already cancelled")
	ErrCancelCompleted      = errors.New("cannot cancel a completed reservation")
)
