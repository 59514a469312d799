package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eagleeyes/storefront/internal/auth"
	"github.com/eagleeyes/storefront/internal/logger"
	"github.com/eagleeyes/storefront/internal/metrics"
	"github.com/eagleeyes/storefront/internal/models"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rr = serve(h, req)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rr.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	h := Recover(logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "internal_error")
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(2)(okHandler)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	unlimited := RateLimit(0)(okHandler)
	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, serve(unlimited, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
}

type fakeSessions struct{ user *models.User }

func (f fakeSessions) CurrentUser() *models.User { return f.user }

func TestAuthGuards(t *testing.T) {
	tm := auth.NewTokenManager("secret", "test", time.Hour)
	jane := &models.User{ID: "2", Name: "Jane", Role: models.RoleCustomer}
	admin := &models.User{ID: "1", Name: "Admin", Role: models.RoleAdmin}

	janeTok, _, err := tm.Generate("2", string(models.RoleCustomer))
	require.NoError(t, err)
	adminTok, _, err := tm.Generate("1", string(models.RoleAdmin))
	require.NoError(t, err)
	foreignTok, _, err := auth.NewTokenManager("other", "test", time.Hour).Generate("2", "CUSTOMER")
	require.NoError(t, err)

	tests := []struct {
		name     string
		session  *models.User
		token    string
		admin    bool
		wantCode int
	}{
		{name: "no token", session: jane, wantCode: http.StatusUnauthorized},
		{name: "bad signature", session: jane, token: foreignTok, wantCode: http.StatusUnauthorized},
		{name: "signed out", session: nil, token: janeTok, wantCode: http.StatusUnauthorized},
		{name: "token for another user", session: admin, token: janeTok, wantCode: http.StatusUnauthorized},
		{name: "signed in", session: jane, token: janeTok, wantCode: http.StatusOK},
		{name: "customer on admin route", session: jane, token: janeTok, admin: true, wantCode: http.StatusForbidden},
		{name: "admin on admin route", session: admin, token: adminTok, admin: true, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(tm, fakeSessions{user: tt.session})
			var h http.Handler = okHandler
			if tt.admin {
				h = RequireAdmin(h)
			}
			h = m.RequireUser(h)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := serve(h, req)
			assert.Equal(t, tt.wantCode, rr.Code)
			switch tt.wantCode {
			case http.StatusUnauthorized:
				assert.Contains(t, rr.Body.String(), `"redirect":"/login"`)
			case http.StatusForbidden:
				assert.Contains(t, rr.Body.String(), `"redirect":"/admin-login"`)
			}
		})
	}
}

func TestRequireRole_RoleFollowsDirectory(t *testing.T) {
	h := RequireAdmin(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUser(req.Context(), models.User{ID: "3", Role: models.RoleTrainer}))
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUser(req.Context(), models.User{ID: "3", Role: models.RoleAdmin}))
	assert.Equal(t, http.StatusOK, serve(h, req).Code)
}

func TestHTTPMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(HTTPMetrics)
	r.Get("/api/v1/products/{id}", okHandler)

	matched := metrics.RequestsTotal.WithLabelValues("/api/v1/products/{id}", http.MethodGet, "200")
	unmatched := metrics.RequestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404")
	beforeMatched := testutil.ToFloat64(matched)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/products/p1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/products/p2", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	assert.Equal(t, beforeMatched+2, testutil.ToFloat64(matched))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
