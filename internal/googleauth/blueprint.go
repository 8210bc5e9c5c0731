// Package googleauth mounts the Google sign-in flow under /login and keeps the
// resulting OAuth token in the caller's session. Token exchange and refresh are
// done by golang.org/x/oauth2.
package googleauth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/events"
	"github.com/nfrund/googledash/internal/pubsub"
	"github.com/nfrund/googledash/internal/view"
	"golang.org/x/oauth2"
)

const (
	// LoginPath starts the flow. CallbackPath receives Google's redirect.
	LoginPath    = "/login/google"
	CallbackPath = "/login/google/authorized"

	sessionName = "google-oauth"
	keyState    = "state"
	keyVerifier = "verifier"
	keyNext     = "next"
	keyToken    = "token"
)

// ErrNoToken is returned when the session holds no Google token.
var ErrNoToken = errors.New("no google oauth token in session")

// Blueprint is the Google OAuth sub-application.
type Blueprint struct {
	oauth      *oauth2.Config
	redirectTo string
	revokeURL  string
	httpClient *http.Client
	publisher  pubsub.Publisher
}

// Option customizes a Blueprint.
type Option func(*Blueprint)

// WithRedirectTo sets where the user lands after signing in when no next target was given.
func WithRedirectTo(path string) Option {
	return func(b *Blueprint) { b.redirectTo = path }
}

// WithRevokeURL overrides Google's token revocation endpoint.
func WithRevokeURL(u string) Option {
	return func(b *Blueprint) { b.revokeURL = u }
}

// WithHTTPClient sets the client used for token exchange, refresh, and revocation.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Blueprint) { b.httpClient = c }
}

// WithPublisher sends sign-in events to the bus.
func WithPublisher(p pubsub.Publisher) Option {
	return func(b *Blueprint) { b.publisher = p }
}

// New creates a Blueprint for the given OAuth client configuration.
func New(cfg *oauth2.Config, opts ...Option) *Blueprint {
	b := &Blueprint{
		oauth:      cfg,
		redirectTo: "/",
		revokeURL:  "https://accounts.google.com/o/oauth2/revoke",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register mounts the login and callback routes on a group prefixed with /login.
func (b *Blueprint) Register(g *echo.Group) {
	g.GET("/google", b.Login)
	g.GET("/google/authorized", b.Callback)
}

// LoginURL is the entry point unauthenticated users are sent to.
func (b *Blueprint) LoginURL() string {
	return LoginPath
}

// Login stores a fresh state and PKCE verifier in the session and redirects to Google.
func (b *Blueprint) Login(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	state := rand.Text()
	verifier := oauth2.GenerateVerifier()
	sess.Values[keyState] = state
	sess.Values[keyVerifier] = verifier
	if next := SafeNext(c.QueryParam("next")); next != "" {
		sess.Values[keyNext] = next
	} else {
		delete(sess.Values, keyNext)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	authURL := b.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))
	return c.Redirect(http.StatusFound, authURL)
}

// Callback validates the state, exchanges the code, and stores the token.
func (b *Blueprint) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	wantState, _ := sess.Values[keyState].(string)
	verifier, _ := sess.Values[keyVerifier].(string)
	next, _ := sess.Values[keyNext].(string)
	delete(sess.Values, keyState)
	delete(sess.Values, keyVerifier)
	delete(sess.Values, keyNext)

	if reason := c.QueryParam("error"); reason != "" {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
		b.publish(c, events.TopicSignInFailed, events.AuthEvent{Reason: reason})
		view.SetFlashError(c, "Google sign-in was cancelled or denied.")
		return c.Redirect(http.StatusFound, "/")
	}

	// The cleared state and verifier must reach the cookie on every outcome.
	reject := func(err error) error {
		if saveErr := sess.Save(c.Request(), c.Response()); saveErr != nil {
			return saveErr
		}
		return err
	}

	gotState := c.QueryParam("state")
	if wantState == "" || subtle.ConstantTimeCompare([]byte(wantState), []byte(gotState)) != 1 {
		b.publish(c, events.TopicSignInFailed, events.AuthEvent{Reason: "state_mismatch"})
		return reject(echo.NewHTTPError(http.StatusForbidden, "OAuth state mismatch"))
	}

	code := c.QueryParam("code")
	if code == "" {
		return reject(echo.NewHTTPError(http.StatusBadRequest, "missing authorization code"))
	}

	tok, err := b.oauth.Exchange(b.clientContext(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		b.publish(c, events.TopicSignInFailed, events.AuthEvent{Reason: "exchange_failed"})
		return reject(echo.NewHTTPError(http.StatusBadGateway, "token exchange with Google failed").SetInternal(err))
	}

	if err := putToken(sess, tok); err != nil {
		return reject(err)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	b.publish(c, events.TopicSignedIn, events.AuthEvent{Email: emailFromIDToken(tok)})
	view.SetFlashSuccess(c, "You have signed in with Google.")

	if next == "" {
		next = b.redirectTo
	}
	return c.Redirect(http.StatusFound, next)
}

// Authorized reports whether the session holds a usable token.
func (b *Blueprint) Authorized(c echo.Context) bool {
	tok, err := b.Token(c)
	if err != nil {
		return false
	}
	return tok.Valid() || tok.RefreshToken != ""
}

// Token returns the token stored in the session.
func (b *Blueprint) Token(c echo.Context) (*oauth2.Token, error) {
	sess, err := getSession(c)
	if err != nil {
		return nil, err
	}
	return readToken(sess)
}

// Client returns an HTTP client that authenticates as the signed-in user.
// A refreshed token is written back to the session.
func (b *Blueprint) Client(c echo.Context) (*http.Client, error) {
	tok, err := b.Token(c)
	if err != nil {
		return nil, err
	}
	ctx := b.clientContext(c.Request().Context())
	ts := &sessionTokenSource{
		base:   b.oauth.TokenSource(ctx, tok),
		c:      c,
		access: tok.AccessToken,
	}
	return oauth2.NewClient(ctx, ts), nil
}

// Forget removes the token from the session.
func (b *Blueprint) Forget(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	delete(sess.Values, keyToken)
	return sess.Save(c.Request(), c.Response())
}

func (b *Blueprint) clientContext(ctx context.Context) context.Context {
	if b.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, b.httpClient)
}

func (b *Blueprint) publish(c echo.Context, topic string, ev events.AuthEvent) {
	meta := map[string]string{"request_id": c.Response().Header().Get(echo.HeaderXRequestID)}
	if err := events.Publish(c.Request().Context(), b.publisher, topic, ev, meta); err != nil {
		slog.Warn("Failed to publish auth event", "topic", topic, "error", err)
	}
}

// SafeNext returns target if it is a local absolute path, or "" otherwise.
func SafeNext(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return ""
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return target
}
