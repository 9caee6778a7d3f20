package profile

import "context"

// ProfileRepository defines data access methods for profiles.
type ProfileRepository interface {
	// Create creates a new profile
	Create(ctx context.Context, p Profile) (Profile, error)

	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id string) (Profile, error)

	// GetByEmail retrieves a profile by its unique email
	GetByEmail(ctx context.Context, email string) (Profile, error)

	// List retrieves profiles, optionally restricted to a role
	List(ctx context.Context, role *Role) ([]Profile, error)

	// Update applies the non-nil fields of the update to the profile
	Update(ctx context.Context, id string, upd UpdateProfileRequest) error

	// CountByRole returns the number of profiles with the given role
	CountByRole(ctx context.Context, role Role) (int, error)
}
