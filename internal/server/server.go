package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/googledash/internal/config"
	"github.com/nfrund/googledash/internal/googleauth"
	"github.com/nfrund/googledash/internal/handlers"
	"github.com/nfrund/googledash/internal/middleware"
	"github.com/nfrund/googledash/internal/pubsub"
	"github.com/nfrund/googledash/internal/rendering"
	"github.com/spf13/afero"
)

// Dependencies holds everything the HTTP server is built from.
type Dependencies struct {
	Config   *config.Config
	Google   *googleauth.Blueprint
	Profiles handlers.ProfileFetcher
	// Bus is optional; without it no auth events are published.
	Bus    pubsub.Publisher
	Assets afero.Fs
	// Echo is optional; a fresh instance is created when nil.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config

	google           *googleauth.Blueprint
	bus              pubsub.Publisher
	assets           afero.Fs
	homeHandler      *handlers.HomeHandler
	dashboardHandler *handlers.DashboardHandler
	authHandler      *handlers.AuthHandler
}

// New creates a new Server instance with its middleware stack configured.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Google == nil {
		return nil, errors.New("server: google blueprint is required")
	}
	if deps.Profiles == nil {
		return nil, errors.New("server: profile fetcher is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(session.Middleware(newSessionStore(deps.Config)))

	return &Server{
		E:                e,
		Cfg:              deps.Config,
		google:           deps.Google,
		bus:              deps.Bus,
		assets:           deps.Assets,
		homeHandler:      handlers.NewHomeHandler(deps.Google),
		dashboardHandler: handlers.NewDashboardHandler(deps.Google, deps.Profiles),
		authHandler:      handlers.NewAuthHandler(deps.Google, deps.Bus),
	}, nil
}

// newSessionStore builds the cookie store holding the OAuth token and flashes.
// SameSite=Lax keeps the cookie on Google's top-level redirect back to the callback.
func newSessionStore(cfg *config.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   !cfg.InsecureTransport,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
