package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

type ProfileServiceImpl struct {
	profile.ProfileRepository
}

func NewProfileService(profileRepository profile.ProfileRepository) profile.ProfileService {
	return &ProfileServiceImpl{
		ProfileRepository: profileRepository,
	}
}

// GetMe implements profile.ProfileService.
func (s *ProfileServiceImpl) GetMe(ctx context.Context, actor policy.Actor) (profile.ProfileResponse, error) {
	return s.GetProfile(ctx, actor, actor.ProfileID)
}

// UpdateMe implements profile.ProfileService. Only the actor's own profile is
// writable, and only through the request's explicit fields.
func (s *ProfileServiceImpl) UpdateMe(ctx context.Context, actor policy.Actor, req profile.UpdateProfileRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	if !policy.Allow(actor, policy.Resource{Kind: policy.ResourceProfile, OwnerID: actor.ProfileID}, policy.ActionWrite) {
		return profile.ProfileResponse{}, profile.ErrForbidden
	}

	if err := s.ProfileRepository.Update(ctx, actor.ProfileID, req); err != nil {
		switch {
		case errors.Is(err, profile.ErrNoUpdatableFields),
			errors.Is(err, profile.ErrEmailExists),
			errors.Is(err, profile.ErrProfileNotFound):
			return profile.ProfileResponse{}, err
		}
		return profile.ProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(ctx, actor, actor.ProfileID)
}

// GetProfile implements profile.ProfileService.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, actor policy.Actor, id string) (profile.ProfileResponse, error) {
	if !policy.Allow(actor, policy.Resource{Kind: policy.ResourceProfile, OwnerID: id}, policy.ActionRead) {
		return profile.ProfileResponse{}, profile.ErrForbidden
	}

	p, err := s.ProfileRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return profile.ProfileResponse{}, profile.ErrProfileNotFound
		}
		return profile.ProfileResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile.ToResponse(p), nil
}

// ListProfiles implements profile.ProfileService.
func (s *ProfileServiceImpl) ListProfiles(ctx context.Context, actor policy.Actor, role *profile.Role) ([]profile.ProfileResponse, error) {
	if !policy.Allow(actor, policy.Resource{Kind: policy.ResourceProfile}, policy.ActionRead) {
		return nil, profile.ErrForbidden
	}

	profiles, err := s.ProfileRepository.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	responses := make([]profile.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, profile.ToResponse(p))
	}
	return responses, nil
}
