package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode wraps a templ.Component so it can sit inside a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

// Render implements gomponents.Node.
func (n *templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// Templ converts a templ.Component into a gomponents.Node. gomponents does not
// pass a context while rendering, so the one given here is used.
func Templ(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return &templNode{ctx: ctx, component: component}
}

// Flash renders flash messages as a templ component.
func Flash(data FlashData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.Empty() {
			return nil
		}
		if _, err := io.WriteString(w, `<div id="flash" class="flash">`); err != nil {
			return err
		}
		for _, msg := range data.Success {
			if _, err := io.WriteString(w, `<p class="flash-success" role="status">`+templ.EscapeString(msg)+`</p>`); err != nil {
				return err
			}
		}
		for _, msg := range data.Error {
			if _, err := io.WriteString(w, `<p class="flash-error" role="alert">`+templ.EscapeString(msg)+`</p>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
