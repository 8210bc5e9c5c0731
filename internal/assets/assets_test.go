package assets

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, fsys afero.Fs, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	Register(e, fsys)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNew_Embedded(t *testing.T) {
	fsys, err := New("")
	require.NoError(t, err)

	ok, err := afero.Exists(fsys, "app.css")
	require.NoError(t, err)
	assert.True(t, ok)

	rec := serve(t, fsys, "/static/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".nav")
}

func TestNew_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644))

	fsys, err := New(dir)
	require.NoError(t, err)

	rec := serve(t, fsys, "/static/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	assert.Error(t, afero.WriteFile(fsys, "new.css", []byte("x"), 0o644), "directory view is read-only")
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestRegister_MemFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "app.js", []byte("console.log(1)"), 0o644))

	rec := serve(t, mem, "/static/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = serve(t, mem, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
