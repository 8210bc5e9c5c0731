package layouts

import (
	"context"

	"github.com/nfrund/googledash/internal/view"
	cmp "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Page describes the chrome around a page's content.
type Page struct {
	Title    string
	SignedIn bool
	Flashes  view.FlashData
}

// Base wraps content in the full HTML document shared by every page.
func Base(ctx context.Context, page Page, content ...cmp.Node) cmp.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(page.Title),
		Language: "en",
		Head: []cmp.Node{
			g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
			g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4"), g.Defer()),
		},
		Body: []cmp.Node{
			hx.Boost("true"),
			nav(page.SignedIn),
			view.Templ(ctx, view.Flash(page.Flashes)),
			g.Main(g.Class("container"), cmp.Group(content)),
		},
	})
}

func nav(signedIn bool) cmp.Node {
	return g.Nav(
		g.Class("nav"),
		g.A(g.Href("/"), cmp.Text("Home")),
		g.A(g.Href("/dashboard"), cmp.Text("Dashboard")),
		cmp.If(signedIn, g.A(g.Href("/logout"), cmp.Text("Sign out"))),
		cmp.If(!signedIn, g.A(g.Href("/signin"), cmp.Text("Sign in"))),
	)
}
