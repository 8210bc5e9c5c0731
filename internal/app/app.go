// Package app assembles the application's services in a dependency injection
// container and runs them.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/googledash/internal/assets"
	"github.com/nfrund/googledash/internal/config"
	"github.com/nfrund/googledash/internal/events"
	"github.com/nfrund/googledash/internal/googleauth"
	"github.com/nfrund/googledash/internal/logging"
	"github.com/nfrund/googledash/internal/profile"
	"github.com/nfrund/googledash/internal/pubsub"
	"github.com/nfrund/googledash/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// App is the fully wired application.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Server *server.Server

	bus   *pubsub.WatermillBridge
	audit *events.AuditLogger
}

// NewInjector registers every service provider for cfg.
func NewInjector(cfg *config.Config) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, provideLogger)
	do.Provide(i, provideBus)
	do.Provide(i, provideOAuthConfig)
	do.Provide(i, provideBlueprint)
	do.Provide(i, provideProfileClient)
	do.Provide(i, provideAssets)
	do.Provide(i, provideAuditLogger)
	do.Provide(i, provideServer)

	return i
}

// New builds the application from cfg.
func New(cfg *config.Config) (*App, error) {
	return FromInjector(NewInjector(cfg))
}

// FromInjector resolves the application from an injector prepared by NewInjector.
// Tests override individual services before calling it.
func FromInjector(i do.Injector) (*App, error) {
	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}
	srv.RegisterRoutes()

	return &App{
		Config: do.MustInvoke[*config.Config](i),
		Logger: do.MustInvoke[*slog.Logger](i),
		Server: srv,
		bus:    do.MustInvoke[*pubsub.WatermillBridge](i),
		audit:  do.MustInvoke[*events.AuditLogger](i),
	}, nil
}

// Run starts the audit subscriber and serves HTTP on addr until ctx is canceled
// or the process receives a shutdown signal.
func (a *App) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.Config.ServerAddress
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.audit.Start(ctx, a.bus); err != nil {
		return fmt.Errorf("start audit logger: %w", err)
	}

	a.Logger.Info("Application ready", "addr", addr, "base_url", a.Config.AppBaseURL)
	return a.Server.Start(ctx, addr)
}

func provideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return logging.New(cfg.LogFormat, cfg.LogLevel), nil
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(do.MustInvoke[*slog.Logger](i)), nil
}

func provideOAuthConfig(i do.Injector) (*oauth2.Config, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.RedirectURL(),
		Scopes:       cfg.GoogleScopes,
		Endpoint:     endpoints.Google,
	}, nil
}

func provideBlueprint(i do.Injector) (*googleauth.Blueprint, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return googleauth.New(do.MustInvoke[*oauth2.Config](i),
		googleauth.WithRedirectTo("/dashboard"),
		googleauth.WithRevokeURL(cfg.GoogleRevokeURL),
		googleauth.WithPublisher(do.MustInvoke[*pubsub.WatermillBridge](i)),
	), nil
}

func provideProfileClient(i do.Injector) (*profile.Client, error) {
	return profile.NewClient(do.MustInvoke[*config.Config](i).GoogleAPIBaseURL), nil
}

func provideAssets(i do.Injector) (afero.Fs, error) {
	return assets.New(do.MustInvoke[*config.Config](i).StaticDir)
}

func provideAuditLogger(i do.Injector) (*events.AuditLogger, error) {
	return events.NewAuditLogger(do.MustInvoke[*slog.Logger](i)), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	return server.New(server.Dependencies{
		Config:   do.MustInvoke[*config.Config](i),
		Google:   do.MustInvoke[*googleauth.Blueprint](i),
		Profiles: do.MustInvoke[*profile.Client](i),
		Bus:      do.MustInvoke[*pubsub.WatermillBridge](i),
		Assets:   do.MustInvoke[afero.Fs](i),
	})
}
