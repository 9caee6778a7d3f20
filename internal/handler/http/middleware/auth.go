package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/auth"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext builds the acting identity from the verified token claims.
// Handlers call this once and pass the actor down explicitly; services never
// read claims themselves.
func ActorFromContext(ctx context.Context) (policy.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return policy.Actor{}, auth.ErrInvalidToken
	}

	profileID, ok := claims["profile_id"].(string)
	if !ok || profileID == "" {
		return policy.Actor{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return policy.Actor{}, auth.ErrInvalidToken
	}

	role := profile.Role(roleStr)
	if !role.Valid() {
		return policy.Actor{}, auth.ErrInvalidToken
	}

	return policy.Actor{ProfileID: profileID, Role: policy.Role(role)}, nil
}
