package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/ynot-advisory/landing/models"
)

// ContactEmail builds the inbox notification for an accepted submission.
// Replies go straight to the person who filled in the form.
func ContactEmail(inbox string, sub models.Submission) EmailMessage {
	subject := fmt.Sprintf("New enquiry from %s", sub.FullName())
	if sub.Company != "" {
		subject += " (" + sub.Company + ")"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", sub.FullName())
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", sub.Company)
	}
	fmt.Fprintf(&b, "Received: %s\n", sub.Received.UTC().Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Reference: %s\n\n", sub.ID)
	b.WriteString(sub.Message)
	b.WriteString("\n")

	var h strings.Builder
	fmt.Fprintf(&h, "<p><strong>Name:</strong> %s<br>", html.EscapeString(sub.FullName()))
	fmt.Fprintf(&h, "<strong>Email:</strong> %s<br>", html.EscapeString(sub.Email))
	if sub.Company != "" {
		fmt.Fprintf(&h, "<strong>Company:</strong> %s<br>", html.EscapeString(sub.Company))
	}
	fmt.Fprintf(&h, "<strong>Reference:</strong> %s</p>", html.EscapeString(sub.ID))
	fmt.Fprintf(&h, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>"))

	return EmailMessage{
		To:          inbox,
		ToName:      "Ynot Advisory",
		ReplyTo:     sub.Email,
		ReplyToName: sub.FullName(),
		Subject:     subject,
		Body:        b.String(),
		HTML:        h.String(),
	}
}
