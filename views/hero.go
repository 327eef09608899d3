package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Div(
		Class("frame"),
		Div(
			Class("card card-hero"),
			ID("hero"),
			Div(Class("overlay overlay-primary")),

			Div(
				Class("card-inner hero-inner"),
				Div(
					Class("hero-logo"),
					Logo("light", "logo logo-hero"),
				),

				Div(
					Class("hero-content"),
					H1(
						Class("hero-title"),
						Span(Class("hero-title-accent"), g.Text("Strategic Growth.")),
						Span(Class("hero-title-plain"), g.Text("Simplified.")),
					),
					P(
						Class("hero-lead"),
						g.Text("A Singapore-based consultancy helping businesses navigate complexity and scale with clarity."),
					),
					P(
						Class("hero-lead"),
						g.Text("We partner with founders, teams, and organisations to shape strategy, streamline operations, and turn insight into action."),
					),
					A(
						Href("#contact"),
						Class("btn btn-glass"),
						g.Text("Start Your Journey"),
					),
				),
			),
		),
	)
}
