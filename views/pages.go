package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomePage composes the landing page. The contact script is skipped when
// there is no API endpoint, leaving the plain form post.
func HomePage(state FormState) g.Node {
	var scripts []string
	if state.TurnstileSiteKey != "" {
		scripts = append(scripts, "https://challenges.cloudflare.com/turnstile/v0/api.js")
	}
	if state.APIEndpoint != "" {
		scripts = append(scripts, "/static/js/contact.js")
	}

	return Layout(
		PageConfig{Scripts: scripts},
		Main(
			Class("main"),
			Hero(),
			About(),
			WhyChooseUs(),
			ContactSection(state),
		),
		PageFooter(),
		ToastRegion(state.Toast),
	)
}

func NotFoundPage(homePath string) g.Node {
	return Layout(
		PageConfig{Title: "Page not found - Ynot Advisory"},
		Main(
			Class("not-found"),
			Div(
				Class("card card-form not-found-card"),
				H1(Class("not-found-title"), g.Text("404 Page Not Found")),
				P(Class("not-found-text"), g.Text("The page you are looking for doesn't exist or has moved.")),
				A(Href(homePath), Class("btn btn-accent"), g.Text("Back to home")),
			),
		),
	)
}
