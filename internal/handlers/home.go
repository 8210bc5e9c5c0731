package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/view"
	"github.com/nfrund/googledash/web/src/templates/layouts"
	"github.com/nfrund/googledash/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	google GoogleSession
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(google GoogleSession) *HomeHandler {
	return &HomeHandler{google: google}
}

// HomeGet renders the landing page with its sign-in link.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	signedIn := h.google.Authorized(c)

	page := layouts.Base(c.Request().Context(), layouts.Page{
		Title:    "home",
		SignedIn: signedIn,
		Flashes:  view.GetFlashData(c),
	}, pages.Home(signedIn))

	return c.Render(http.StatusOK, "", page)
}
