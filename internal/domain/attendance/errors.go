package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNoOpenCheckIn    = errors.New("no open check-in to check out from")
	ErrInvalidDuration  = errors.New("check-out time is before check-in time")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrForbidden      = errors.New("not allowed to access this attendance record")
)
