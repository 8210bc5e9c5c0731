package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/nfrund/googledash/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:          "a-very-secret-key-for-testing-!",
		GoogleClientID:     "client-id.apps.googleusercontent.com",
		GoogleClientSecret: "client-secret",
		GoogleScopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email"},
		GoogleAPIBaseURL:   "https://www.googleapis.com",
		GoogleRevokeURL:    "https://accounts.google.com/o/oauth2/revoke",
		InsecureTransport:  true,
		AppBaseURL:         "http://localhost:5000",
		ServerAddress:      "127.0.0.1:0",
		SessionMaxAge:      time.Hour,
		LogFormat:          "text",
		LogLevel:           "error",
	}
}

func serve(t *testing.T, a *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	a.Server.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNew_WiresRoutes(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)

	rec := serve(t, a, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, a, "/static/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, a, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/login/google")

	rec = serve(t, a, "/dashboard")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/google?next=%2Fdashboard", rec.Header().Get("Location"))
}

func TestNew_LoginRedirectsToGoogle(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)

	rec := serve(t, a, "/login/google")
	require.Equal(t, http.StatusFound, rec.Code)

	u, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "client-id.apps.googleusercontent.com", q.Get("client_id"))
	assert.Equal(t, "http://localhost:5000/login/google/authorized", q.Get("redirect_uri"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("state"))
}

func TestNew_MissingStaticDir(t *testing.T) {
	cfg := testConfig()
	cfg.StaticDir = t.TempDir() + "/missing"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
