package middleware

import (
	"net/http"

	"github.com/strivehr/perform-backend-go/internal/domain/user"
	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireApprover requires a role that can decide requests: admin,
// hr_manager or manager.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch Role(r) {
		case user.RoleAdmin, user.RoleHRManager, user.RoleManager:
			next.ServeHTTP(w, r)
		default:
			response.HandleError(w, user.ErrManagerAccessRequired)
		}
	})
}

// RequireEmployeeLink requires the token to carry a linked employee id.
// Guards the self-service portal surface.
func RequireEmployeeLink(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := EmployeeID(r); !ok {
			response.Forbidden(w, "No employee record linked to this account")
			return
		}
		next.ServeHTTP(w, r)
	})
}
