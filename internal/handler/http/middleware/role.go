package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
)

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, profile.ErrForbidden)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, profile.ErrForbidden)
			return
		}

		if profile.Role(roleStr) != profile.RoleManager {
			response.HandleError(w, profile.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
