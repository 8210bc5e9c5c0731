package googleauth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/internal/middleware"
	"golang.org/x/oauth2"
)

// getSession loads the OAuth session. A cookie that no longer decodes (rotated
// SECRET_KEY, tampering) yields the fresh session the store returns alongside
// the error; saving it replaces the bad cookie.
func getSession(c echo.Context) (*sessions.Session, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		if sess == nil {
			return nil, fmt.Errorf("load %s session: %w", sessionName, err)
		}
		middleware.FromContext(c.Request().Context()).Warn("Discarding undecodable session cookie", "session", sessionName, "error", err)
	}
	return sess, nil
}

// Tokens are kept as JSON strings so the cookie codec needs no gob registration.
func putToken(sess *sessions.Session, tok *oauth2.Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	sess.Values[keyToken] = string(raw)
	return nil
}

func readToken(sess *sessions.Session) (*oauth2.Token, error) {
	raw, ok := sess.Values[keyToken].(string)
	if !ok || raw == "" {
		return nil, ErrNoToken
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal([]byte(raw), tok); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, ErrNoToken
	}
	return tok, nil
}

// sessionTokenSource persists tokens refreshed by base into the request's session.
type sessionTokenSource struct {
	base oauth2.TokenSource
	c    echo.Context

	mu     sync.Mutex
	access string
}

func (s *sessionTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken == s.access {
		return tok, nil
	}
	s.access = tok.AccessToken

	sess, err := getSession(s.c)
	if err != nil {
		return nil, err
	}
	if err := putToken(sess, tok); err != nil {
		return nil, err
	}
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		slog.Warn("Failed to persist refreshed google token", "error", err)
	}
	return tok, nil
}
