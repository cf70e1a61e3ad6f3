package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/user"
	"github.com/shiftline-hq/timetrack-backend-go/internal/handler/http/response"
)

// RequirePrivileged requires an admin, owner or manager role. Routes
// behind it are review and cross-employee surfaces; the finer-grained
// decisions stay with the service-level guard.
func RequirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Privileged role required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Privileged role required")
			return
		}

		if !user.IsPrivileged(user.Role(roleStr)) {
			response.Forbidden(w, "Privileged role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
