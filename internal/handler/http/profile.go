package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{
		profileService: profileService,
	}
}

// GetMe implements ProfileHandler.
func (h *ProfileHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profileResponse, err := h.profileService.GetMe(r.Context(), actor)
	if err != nil {
		slog.Error("GetMe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profileResponse)
}

// UpdateMe implements ProfileHandler.
func (h *ProfileHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq profile.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateMe decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profileResponse, err := h.profileService.UpdateMe(r.Context(), actor, updateReq)
	if err != nil {
		slog.Error("UpdateMe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", profileResponse)
}

// GetByID implements ProfileHandler.
func (h *ProfileHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	profileResponse, err := h.profileService.GetProfile(r.Context(), actor, id)
	if err != nil {
		slog.Error("GetByID service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profileResponse)
}

// List implements ProfileHandler.
func (h *ProfileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var role *profile.Role
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		parsed := profile.Role(roleStr)
		if !parsed.Valid() {
			response.BadRequest(w, "role must be one of: employee, manager", nil)
			return
		}
		role = &parsed
	}

	profiles, err := h.profileService.ListProfiles(r.Context(), actor, role)
	if err != nil {
		slog.Error("List profiles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profiles)
}
