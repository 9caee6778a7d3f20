package profile

import (
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

type ProfileResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	EmployeeCode string  `json:"employee_code"`
	Department   *string `json:"department,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// UpdateProfileRequest carries the explicitly updatable fields. Role and
// employee code are immutable once set.
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a Profile entity to its API shape.
func ToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		FullName:     p.FullName,
		Email:        p.Email,
		Role:         string(p.Role),
		EmployeeCode: p.EmployeeCode,
		Department:   p.Department,
		CreatedAt:    p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
