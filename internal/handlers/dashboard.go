package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/googleauth"
	"github.com/nfrund/googledash/internal/middleware"
	"github.com/nfrund/googledash/internal/view"
	"github.com/nfrund/googledash/web/src/templates/layouts"
	"github.com/nfrund/googledash/web/src/templates/pages"
)

// DashboardHandler handles requests for the user dashboard.
type DashboardHandler struct {
	google   GoogleSession
	profiles ProfileFetcher
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(google GoogleSession, profiles ProfileFetcher) *DashboardHandler {
	return &DashboardHandler{google: google, profiles: profiles}
}

// DashboardGet fetches the caller's Google profile and renders it.
// It sits behind middleware.RequireAuthorized. Any failure to load the
// profile is returned to the error handler; no page is rendered.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	ctx := c.Request().Context()

	client, err := h.google.Client(c)
	if errors.Is(err, googleauth.ErrNoToken) {
		return c.Redirect(http.StatusFound, googleauth.LoginPath)
	}
	if err != nil {
		return fmt.Errorf("google client: %w", err)
	}

	info, err := h.profiles.Fetch(ctx, client)
	if err != nil {
		return fmt.Errorf("fetch google profile: %w", err)
	}
	middleware.FromContext(ctx).Debug("Loaded google profile", "google_id", info.ID)

	page := layouts.Base(ctx, layouts.Page{
		Title:    "dashboard",
		SignedIn: true,
		Flashes:  view.GetFlashData(c),
	}, pages.Dashboard(pages.DashboardData{
		Greeting:    info.DisplayName(),
		Email:       info.Email,
		Picture:     info.Picture,
		ProfileJSON: info.PrettyJSON(),
	}))

	return c.Render(http.StatusOK, "", page)
}
