package layouts

import (
	"context"
	"strings"
	"testing"

	"github.com/nfrund/googledash/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Sign In - Google Dashboard", CalculateTitle("sign in"))
	assert.Equal(t, "Google Dashboard", CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var b strings.Builder
	page := Page{Title: "home", SignedIn: true, Flashes: view.FlashData{Error: []string{"<oops>"}}}
	require.NoError(t, Base(context.Background(), page).Render(&b))

	html := b.String()
	assert.Contains(t, html, "<title>Home - Google Dashboard</title>")
	assert.Contains(t, html, `hx-boost="true"`)
	assert.Contains(t, html, `href="/logout"`)
	assert.Contains(t, html, "&lt;oops&gt;")
}
