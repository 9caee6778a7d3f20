package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/attendance-backend-go/internal/domain/auth"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/pkg/jwt"
)

// maxCodeRetries bounds how many sequence numbers Register skips past when
// concurrent registrations collide on the same assigned code.
const maxCodeRetries = 3

type AuthServiceImpl struct {
	profile.ProfileRepository
	jwt.Service
}

func NewAuthService(profileRepository profile.ProfileRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		ProfileRepository: profileRepository,
		Service:           jwtService,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueTokens(p profile.Profile) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(p.ID, p.Email, p.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(p.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return tokenResponse, nil
}

// nextEmployeeCodeSeq returns the sequence number the next assigned employee
// code starts from: one past the current headcount across both roles.
func (a *AuthServiceImpl) nextEmployeeCodeSeq(ctx context.Context) (int, error) {
	employees, err := a.ProfileRepository.CountByRole(ctx, profile.RoleEmployee)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	managers, err := a.ProfileRepository.CountByRole(ctx, profile.RoleManager)
	if err != nil {
		return 0, fmt.Errorf("failed to count managers: %w", err)
	}
	return employees + managers + 1, nil
}

// Register implements auth.AuthService. The profile is always created with
// the employee role and a server-assigned EMP-NNNN code; the request cannot
// choose either. A concurrent registration can race to the same code, so the
// insert retries past the uniqueness conflict onto the next sequence number.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	seq, err := a.nextEmployeeCodeSeq(ctx)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var newProfile profile.Profile
	for attempt := 0; ; attempt++ {
		newProfile, err = a.ProfileRepository.Create(ctx, profile.Profile{
			FullName:     req.FullName,
			Email:        req.Email,
			PasswordHash: &hash,
			Role:         profile.RoleEmployee,
			EmployeeCode: fmt.Sprintf("EMP-%04d", seq+attempt),
			Department:   req.Department,
		})
		if errors.Is(err, profile.ErrEmployeeCodeExists) && attempt < maxCodeRetries {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, profile.ErrEmailExists) || errors.Is(err, profile.ErrEmployeeCodeExists) {
			return auth.TokenResponse{}, err
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return a.issueTokens(newProfile)
}

// Login implements auth.AuthService. Unknown email and wrong password come
// back as the same error so the endpoint leaks nothing about which it was.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	profileData, err := a.ProfileRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get profile by email: %w", err)
	}

	if profileData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*profileData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(profileData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrTokenRevoked
	}

	profileID, err := a.Service.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	profileData, err := a.ProfileRepository.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get profile by ID: %w", err)
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(profileData.ID, profileData.Email, profileData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}
