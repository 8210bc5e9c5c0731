// Package assets provides the filesystem behind /static.
package assets

import (
	"fmt"
	"io/fs"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/googledash/web"
	"github.com/spf13/afero"
)

// Prefix is the URL path static files are served under.
const Prefix = "/static"

// New returns the embedded static tree, or a read-only view of dir when dir is set.
func New(dir string) (afero.Fs, error) {
	if dir == "" {
		sub, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("open embedded static assets: %w", err)
		}
		return afero.FromIOFS{FS: sub}, nil
	}

	osFs := afero.NewOsFs()
	ok, err := afero.DirExists(osFs, dir)
	if err != nil {
		return nil, fmt.Errorf("stat static dir %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("static dir %s does not exist", dir)
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, dir)), nil
}

// Register serves fsys under Prefix.
func Register(e *echo.Echo, fsys afero.Fs) {
	e.StaticFS(Prefix, afero.NewIOFS(fsys))
}
