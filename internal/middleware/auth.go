package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// Authorizer reports whether the caller holds a usable Google session.
type Authorizer interface {
	Authorized(c echo.Context) bool
	LoginURL() string
}

// RequireAuthorized redirects callers without an authorized session to the
// login entry point, remembering where they were headed.
func RequireAuthorized(a Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !a.Authorized(c) {
				target := a.LoginURL() + "?" + url.Values{"next": {c.Request().URL.RequestURI()}}.Encode()
				return c.Redirect(http.StatusFound, target)
			}
			return next(c)
		}
	}
}
