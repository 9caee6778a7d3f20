package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/auth"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, profile.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, profile.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, profile.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, profile.ErrNoUpdatableFields):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoOpenCheckIn):
		Conflict(w, "No open check-in to check out from")
	case errors.Is(err, attendance.ErrInvalidDuration):
		BadRequest(w, "Check-out time is before check-in time", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrForbidden):
		Forbidden(w, err.Error())

	// Storage backend failures
	case errors.Is(err, database.ErrStoreUnavailable):
		ServiceUnavailable(w, "Attendance store unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
