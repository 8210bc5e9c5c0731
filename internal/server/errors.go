package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/middleware"
)

// setupErrorHandling installs the central HTTP error handler. HTTP errors keep
// their status; anything else is logged with a stack trace and becomes a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			attrs := []any{"status", he.Code, "path", c.Request().URL.Path}
			if he.Internal != nil {
				attrs = append(attrs, "error", he.Internal)
			}
			if he.Code >= http.StatusInternalServerError {
				logger.Error("HTTP error", attrs...)
			} else {
				logger.Warn("HTTP error", attrs...)
			}
			respond(c, he.Code, fmt.Sprint(he.Message))
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		respond(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func respond(c echo.Context, code int, message string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, message)
	}
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to write error response", "error", err)
	}
}
