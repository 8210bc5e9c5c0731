package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/profile"
	"golang.org/x/oauth2"
)

// GoogleSession is the slice of the OAuth integration the handlers use.
type GoogleSession interface {
	Authorized(c echo.Context) bool
	Token(c echo.Context) (*oauth2.Token, error)
	Client(c echo.Context) (*http.Client, error)
	Revoke(ctx context.Context, token string) error
	Forget(c echo.Context) error
}

// ProfileFetcher loads the Google profile with an authenticated client.
type ProfileFetcher interface {
	Fetch(ctx context.Context, client *http.Client) (*profile.UserInfo, error)
}
