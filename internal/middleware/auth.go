package middleware

import (
	"net/http"
	"strings"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/auth"
	"github.com/eagleeyes/storefront/internal/models"
)

const (
	LoginPath      = "/login"
	AdminLoginPath = "/admin-login"
)

// SessionSource reports who holds the single active session.
type SessionSource interface {
	CurrentUser() *models.User
}

type AuthMiddleware struct {
	TM       *auth.TokenManager
	Sessions SessionSource
}

func NewAuthMiddleware(tm *auth.TokenManager, sessions SessionSource) *AuthMiddleware {
	return &AuthMiddleware{TM: tm, Sessions: sessions}
}

// RequireUser admits requests whose bearer token verifies and names the user currently
// signed in. A token from an earlier session stops working after logout or another login.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "missing bearer token", httpx.Redirect(LoginPath))
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, err := m.TM.Parse(token)
		if err != nil {
			httpx.WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "invalid token", httpx.Redirect(LoginPath))
			return
		}
		cur := m.Sessions.CurrentUser()
		if cur == nil || cur.ID != claims.UserID {
			httpx.WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "session ended", httpx.Redirect(LoginPath))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), *cur)))
	})
}
