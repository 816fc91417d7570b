package middleware

import (
	"net/http"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/auth"
	"github.com/hrms-vn/hrm-backend-go/internal/handler/http/response"
)

// RequireRoles admits only principals whose role is one of roles.
func RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if !principal.HasRole(roles...) {
				response.HandleError(w, auth.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireManager admits admin, hr and manager principals.
func RequireManager(next http.Handler) http.Handler {
	return RequireRoles(auth.ManagerRoles...)(next)
}
