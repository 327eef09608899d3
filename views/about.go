package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func About() g.Node {
	return Section(
		Class("about"),
		ID("about"),
		Div(
			Class("about-inner"),
			H2(Class("section-title"), g.Text("Who We Are")),
			P(
				Class("about-text"),
				g.Text("Founded by "),
				Strong(g.Text("Sidne Yeo")),
				g.Text(", Ynot Advisory is a Singapore-based consultancy that transforms how businesses approach growth and innovation. We believe every challenge is an opportunity waiting to be unlocked."),
			),
			P(
				Class("about-text"),
				g.Text("Our approach combines strategic thinking with practical execution, helping founders and business leaders navigate complex decisions with clarity and confidence. From early-stage ventures to established enterprises, we partner closely to deliver measurable results."),
			),
			P(
				Class("about-text"),
				I(g.Text("\"Why not take the leap? Why not pursue ambitious goals? Because Ynot?\"")),
				g.Text(" - This philosophy drives everything we do."),
			),
		),
	)
}
