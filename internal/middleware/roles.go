package middleware

import (
	"net/http"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/models"
)

// RequireRole allows only users holding need. It runs after RequireUser, so the role comes
// from the directory entry and reflects changes made during the session.
func RequireRole(need models.Role, redirect string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFrom(r.Context())
			if !ok {
				httpx.WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "sign in required", httpx.Redirect(LoginPath))
				return
			}
			if u.Role != need {
				httpx.WriteError(w, r, http.StatusForbidden, "forbidden", "insufficient role", httpx.Redirect(redirect))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates the dashboard.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(models.RoleAdmin, AdminLoginPath)(next)
}
