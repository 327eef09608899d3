package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("footer-inner"),
			Div(
				Class("footer-logo"),
				Logo("dark", "logo logo-footer"),
			),
			P(Class("footer-tagline"), g.Text("Because Ynot?")),
		),
	)
}
