package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/assets"
	"github.com/nfrund/googledash/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/dashboard", s.dashboardHandler.DashboardGet, middleware.RequireAuthorized(s.google))

	s.E.GET("/signin", s.authHandler.SignInGet)
	s.E.GET("/signup", s.authHandler.SignUpGet)
	s.E.GET("/logout", s.authHandler.Logout)

	// Google sign-in and its callback live under /login.
	login := s.E.Group("/login", middleware.RateLimiter())
	s.google.Register(login)

	if s.assets != nil {
		assets.Register(s.E, s.assets)
	}

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
