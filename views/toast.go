package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	ToastSuccess     = "success"
	ToastDestructive = "destructive"
)

type Toast struct {
	Title       string
	Description string
	Variant     string
}

func SentToast() *Toast {
	return &Toast{
		Title:       "Message sent successfully!",
		Description: "We'll respond within 24 hours to discuss your needs.",
		Variant:     ToastSuccess,
	}
}

func FailedToast() *Toast {
	return &Toast{
		Title:       "Message not sent",
		Description: "Something went wrong. Please try again.",
		Variant:     ToastDestructive,
	}
}

func InvalidToast() *Toast {
	return &Toast{
		Title:       "Please check the form",
		Description: "Some fields need your attention.",
		Variant:     ToastDestructive,
	}
}

// ToastRegion renders the live region; t may be nil.
func ToastRegion(t *Toast) g.Node {
	return Div(
		ID("toaster"),
		Class("toaster"),
		g.Attr("aria-live", "polite"),
		g.If(t != nil, toastNode(t)),
	)
}

func toastNode(t *Toast) g.Node {
	if t == nil {
		return nil
	}
	return Div(
		Class("toast toast-"+t.Variant),
		g.Attr("role", "status"),
		P(Class("toast-title"), g.Text(t.Title)),
		P(Class("toast-description"), g.Text(t.Description)),
	)
}
