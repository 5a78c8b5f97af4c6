package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

const testSecret = "test-secret"

func runProtected(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, 42, model.RoleCustomer, 5)
	require.NoError(t, err)

	rec, c := runProtected(t, JWTAuth(testSecret), "Bearer "+access.Token)

	assert.Equal(t, http.StatusOK, rec.Code)
	// JWT numeric claims decode as float64.
	assert.Equal(t, float64(42), c.Get("user_id"))
	assert.Equal(t, model.RoleCustomer, c.Get("role"))
}

func TestJWTAuthRejects(t *testing.T) {
	expired, err := utils.NewAccessToken(testSecret, 42, model.RoleCustomer, -5)
	require.NoError(t, err)
	wrongKey, err := utils.NewAccessToken("other-secret", 42, model.RoleCustomer, 5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired.Token},
		{"wrong signing key", "Bearer " + wrongKey.Token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := runProtected(t, JWTAuth(testSecret), tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	run := func(role interface{}, allowed ...string) int {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/hotels", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		handler := RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(model.RoleAdmin, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, run(model.RoleCustomer, model.RoleCustomer, model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run(model.RoleCustomer, model.RoleAdmin), "customer cannot write the catalog")
	assert.Equal(t, http.StatusForbidden, run(nil, model.RoleAdmin), "missing role claim")
	assert.Equal(t, http.StatusForbidden, run(42, model.RoleAdmin), "non-string role claim")
}
