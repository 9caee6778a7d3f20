package profile

import (
	"context"

	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

// ProfileService defines business logic for profile operations.
type ProfileService interface {
	// GetMe retrieves the actor's own profile
	GetMe(ctx context.Context, actor policy.Actor) (ProfileResponse, error)

	// UpdateMe applies the explicitly provided fields to the actor's own
	// profile. Role and employee code are not updatable.
	UpdateMe(ctx context.Context, actor policy.Actor, req UpdateProfileRequest) (ProfileResponse, error)

	// GetProfile retrieves any profile (manager scope, or self)
	GetProfile(ctx context.Context, actor policy.Actor, id string) (ProfileResponse, error)

	// ListProfiles retrieves all profiles (manager scope)
	ListProfiles(ctx context.Context, actor policy.Actor, role *Role) ([]ProfileResponse, error)
}
