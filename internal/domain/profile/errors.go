package profile

import "errors"

// Profile domain errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrForbidden          = errors.New("not allowed to access this profile")
	ErrNoUpdatableFields  = errors.New("no updatable fields provided")
)
