package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ynot-advisory/landing/models"
	"github.com/ynot-advisory/landing/validators"
)

// FormState is what the contact section needs to render: the values to
// refill, per-field errors and an optional toast.
type FormState struct {
	Action           string
	APIEndpoint      string
	Values           models.ContactSubmission
	Errors           validators.FieldErrors
	Toast            *Toast
	TurnstileSiteKey string
}

func ContactSection(state FormState) g.Node {
	return Div(
		Class("frame"),
		ID("contact"),
		Div(
			Class("card"),
			Div(Class("overlay overlay-primary-strong")),

			Div(
				Class("card-inner narrow"),
				Div(
					Class("contact-heading"),
					H2(Class("section-title section-title-light"), g.Text("Ready to Transform Your Business?")),
					P(Class("contact-lead"), g.Text("Let's discuss how we can help you achieve your strategic objectives.")),
				),

				Div(
					Class("card card-form"),
					contactForm(state),
				),
			),
		),
	)
}

func contactForm(state FormState) g.Node {
	return Form(
		ID("contact-form"),
		Class("contact-form"),
		Method("post"),
		Action(state.Action),
		g.Attr("data-endpoint", state.APIEndpoint),
		g.Attr("novalidate"),

		Div(
			Class("form-row"),
			textField(state, "firstName", "First Name *", "text", state.Values.FirstName),
			textField(state, "lastName", "Last Name *", "text", state.Values.LastName),
		),
		textField(state, "email", "Email *", "email", state.Values.Email),
		textField(state, "company", "Company", "text", state.Values.Company),

		Div(
			Class("field"),
			Label(g.Attr("for", "message"), Class("field-label"), g.Text("How can we help you? *")),
			Textarea(
				ID("message"),
				Name("message"),
				Rows("4"),
				Class(inputClass(state, "message")),
				g.Text(state.Values.Message),
			),
			fieldError(state, "message"),
		),

		g.If(state.TurnstileSiteKey != "", Div(
			Class("cf-turnstile"),
			g.Attr("data-sitekey", state.TurnstileSiteKey),
		)),

		Button(
			Type("submit"),
			Class("btn btn-accent btn-block"),
			g.Attr("data-idle-label", "Send Message"),
			g.Attr("data-busy-label", "Sending..."),
			g.Text("Send Message"),
		),
	)
}

func textField(state FormState, name, label, inputType, value string) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", name), Class("field-label"), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type(inputType),
			Value(value),
			Class(inputClass(state, name)),
		),
		fieldError(state, name),
	)
}

func inputClass(state FormState, name string) string {
	if state.Errors.Get(name) != "" {
		return "input input-invalid"
	}
	return "input"
}

// fieldError always renders the slot so the script can fill it in.
func fieldError(state FormState, name string) g.Node {
	return P(
		Class("field-error"),
		g.Attr("data-error-for", name),
		g.Text(state.Errors.Get(name)),
	)
}
