package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Auth is shared by the sign-in and sign-up pages; Google handles both.
func Auth(heading string) cmp.Node {
	return g.Section(
		g.Class("auth"),
		g.H1(cmp.Text(heading)),
		g.P(cmp.Text("Accounts are managed by Google. Continue to pick or create one.")),
		g.A(g.Class("button"), g.Href("/login/google"), cmp.Text("Continue with Google")),
	)
}
