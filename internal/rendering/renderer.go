package rendering

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// UniversalRenderer renders templ components and gomponents nodes.
// It implements echo.Renderer so handlers can call c.Render(status, "", component);
// echo buffers the output, so a failing component leaves the response untouched.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it here.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// Render implements echo.Renderer. The component is passed as data; name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.render(c.Request().Context(), data, w)
}
