package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Strength struct {
	Icon        string
	Title       string
	Description string
}

// Strengths are the accordion entries of the "Why Choose Us?" section.
var Strengths = []Strength{
	{"target", "Proven Track Record", "Over 200 successful projects across Fortune 500 companies and emerging startups, with an average ROI increase of 40% within the first year of implementation."},
	{"users", "Industry Expertise", "Deep knowledge across technology, healthcare, finance, manufacturing, and retail sectors, enabling us to provide contextually relevant solutions tailored to your industry's unique challenges."},
	{"lightbulb", "Collaborative Approach", "We work alongside your team, not in isolation. Our collaborative methodology ensures knowledge transfer and builds internal capabilities for sustained success."},
	{"trending-up", "Measurable Results", "Every engagement includes clear KPIs, regular progress reviews, and detailed reporting to ensure transparency and accountability throughout the project lifecycle."},
}

// WhyChooseUs renders the value proposition with an accordion. Each item is a
// <details> element, so several can be open at once; the first starts open.
func WhyChooseUs() g.Node {
	return Div(
		Class("frame frame-flush"),
		Div(
			Class("card"),
			ID("why"),
			Div(Class("overlay overlay-secondary")),

			Div(
				Class("card-inner split"),
				Div(
					H2(Class("section-title section-title-dark"), g.Text("Why Choose Us?")),
					P(
						Class("section-text-dark"),
						g.Text("Our proven track record, innovative methodologies, and commitment to your success set us apart. We don't just provide recommendations—we partner with you to ensure implementation and lasting results."),
					),
				),

				Div(
					Class("accordion"),
					g.Group(g.Map(indexed(Strengths), func(is indexedStrength) g.Node {
						return Details(
							Class("accordion-item"),
							ID(is.id()),
							g.If(is.index == 0, g.Attr("open")),
							Summary(
								Class("accordion-trigger"),
								Icon(is.Icon),
								Span(Class("accordion-title"), g.Text(is.Title)),
							),
							P(Class("accordion-content"), g.Text(is.Description)),
						)
					})),
				),
			),
		),
	)
}

type indexedStrength struct {
	Strength
	index int
}

func (is indexedStrength) id() string {
	return "item-" + strconv.Itoa(is.index+1)
}

func indexed(strengths []Strength) []indexedStrength {
	out := make([]indexedStrength, len(strengths))
	for i, s := range strengths {
		out[i] = indexedStrength{Strength: s, index: i}
	}
	return out
}
