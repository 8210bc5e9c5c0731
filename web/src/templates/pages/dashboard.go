package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// DashboardData is the view model for the dashboard page.
type DashboardData struct {
	Greeting string
	Email    string
	Picture  string
	// ProfileJSON is the profile payload, already indented.
	ProfileJSON string
}

// Dashboard renders the signed-in user's Google profile.
func Dashboard(data DashboardData) cmp.Node {
	return g.Section(
		g.Class("dashboard"),
		g.Div(
			g.Class("profile"),
			cmp.If(data.Picture != "",
				g.Img(g.Class("avatar"), g.Src(data.Picture), g.Alt("Profile picture"), cmp.Attr("referrerpolicy", "no-referrer")),
			),
			g.H1(cmp.Textf("Hello, %s", data.Greeting)),
			cmp.If(data.Email != "", g.P(g.Class("email"), cmp.Text(data.Email))),
		),
		g.H2(cmp.Text("Your Google profile")),
		g.Pre(g.Class("json"), g.Code(cmp.Text(data.ProfileJSON))),
	)
}
