package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the landing page content.
func Home(signedIn bool) cmp.Node {
	return g.Section(
		g.Class("hero"),
		g.H1(cmp.Text("Welcome")),
		g.P(cmp.Text("Sign in with your Google account to see your profile on the dashboard.")),
		cmp.If(!signedIn,
			g.A(g.Class("button"), g.Href("/login/google"), cmp.Text("Sign in with Google")),
		),
		cmp.If(signedIn,
			g.A(g.Class("button"), g.Href("/dashboard"), cmp.Text("Go to your dashboard")),
		),
	)
}
