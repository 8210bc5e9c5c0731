package view

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/middleware"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData carries the one-shot messages shown at the top of a page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// getFlashSession tolerates a cookie that no longer decodes by using the
// fresh session the store hands back with the error.
func getFlashSession(c echo.Context) (*sessions.Session, error) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil && sess != nil {
		middleware.FromContext(c.Request().Context()).Warn("Discarding undecodable session cookie", "session", flashSessionName, "error", err)
		return sess, nil
	}
	return sess, err
}

func setFlash(c echo.Context, key, message string) {
	sess, err := getFlashSession(c)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Flash session unavailable", "error", err)
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := getFlashSession(c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns; the session must be saved to persist that.
	success := sess.Flashes(flashKeySuccess)
	errs := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(errs) == 0 {
		return data
	}

	data.Success = toStrings(success)
	data.Error = toStrings(errs)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
