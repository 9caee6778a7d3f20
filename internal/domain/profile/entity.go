package profile

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // regular employee, sees own data only
	RoleManager  Role = "manager"  // read access to all profiles and attendance
)

// Valid reports whether r is part of the wire-visible role vocabulary.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

type Profile struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash *string
	Role         Role
	EmployeeCode string
	Department   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if the profile may read company-wide data.
func (p *Profile) IsManager() bool {
	return p.Role == RoleManager
}
