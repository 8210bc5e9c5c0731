package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/events"
	"github.com/nfrund/googledash/internal/googleauth"
	"github.com/nfrund/googledash/internal/middleware"
	"github.com/nfrund/googledash/internal/pubsub"
	"github.com/nfrund/googledash/internal/view"
	"github.com/nfrund/googledash/web/src/templates/layouts"
	"github.com/nfrund/googledash/web/src/templates/pages"
)

// AuthHandler serves the sign-in/sign-up pages and sign-out.
type AuthHandler struct {
	google    GoogleSession
	publisher pubsub.Publisher
}

// NewAuthHandler creates a new AuthHandler. publisher may be nil.
func NewAuthHandler(google GoogleSession, publisher pubsub.Publisher) *AuthHandler {
	return &AuthHandler{google: google, publisher: publisher}
}

// SignInGet renders the sign-in page (GET /signin).
func (h *AuthHandler) SignInGet(c echo.Context) error {
	return h.renderAuth(c, "sign in", "Sign in")
}

// SignUpGet renders the sign-up page (GET /signup). Google owns account creation,
// so it offers the same button as sign-in.
func (h *AuthHandler) SignUpGet(c echo.Context) error {
	return h.renderAuth(c, "sign up", "Create your account")
}

func (h *AuthHandler) renderAuth(c echo.Context, title, heading string) error {
	page := layouts.Base(c.Request().Context(), layouts.Page{
		Title:    title,
		SignedIn: h.google.Authorized(c),
		Flashes:  view.GetFlashData(c),
	}, pages.Auth(heading))
	return c.Render(http.StatusOK, "", page)
}

// Logout revokes the Google token, drops it from the session, and returns home.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	tok, err := h.google.Token(c)
	switch {
	case errors.Is(err, googleauth.ErrNoToken):
		return c.Redirect(http.StatusFound, "/")
	case err != nil:
		logger.Warn("Discarding unreadable google token", "error", err)
	default:
		// An already expired token makes Google reject the revoke; the session is cleared regardless.
		if err := h.google.Revoke(ctx, tok.AccessToken); err != nil {
			logger.Warn("Failed to revoke google token", "error", err)
		}
	}

	if err := h.google.Forget(c); err != nil {
		return err
	}

	meta := map[string]string{"request_id": c.Response().Header().Get(echo.HeaderXRequestID)}
	if err := events.Publish(ctx, h.publisher, events.TopicSignedOut, events.AuthEvent{}, meta); err != nil {
		logger.Warn("Failed to publish sign-out event", "error", err)
	}

	view.SetFlashSuccess(c, "You have been signed out.")
	return c.Redirect(http.StatusFound, "/")
}
