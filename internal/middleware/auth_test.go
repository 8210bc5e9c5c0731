package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeAuthorizer struct {
	authorized bool
}

func (f fakeAuthorizer) Authorized(echo.Context) bool { return f.authorized }
func (f fakeAuthorizer) LoginURL() string             { return "/login/google" }

func TestRequireAuthorized(t *testing.T) {
	newEcho := func(a Authorizer) *echo.Echo {
		e := echo.New()
		e.GET("/dashboard", func(c echo.Context) error {
			return c.String(http.StatusOK, "dashboard")
		}, RequireAuthorized(a))
		return e
	}

	t.Run("unauthenticated user is redirected to login", func(t *testing.T) {
		e := newEcho(fakeAuthorizer{authorized: false})
		req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=raw", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login/google?next=%2Fdashboard%3Ftab%3Draw", rec.Header().Get("Location"))
	})

	t.Run("authorized user reaches the handler", func(t *testing.T) {
		e := newEcho(fakeAuthorizer{authorized: true})
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dashboard", rec.Body.String())
	})
}
