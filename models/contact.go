package models

import "time"

// ContactSubmission is the payload posted by the contact form, either as JSON
// to /api/contact or form-encoded from the page itself.
type ContactSubmission struct {
	FirstName      string `json:"firstName" form:"firstName" validate:"required"`
	LastName       string `json:"lastName" form:"lastName" validate:"required"`
	Email          string `json:"email" form:"email" validate:"email"`
	Company        string `json:"company,omitempty" form:"company" validate:"omitempty,max=200"`
	Message        string `json:"message" form:"message" validate:"min=10"`
	TurnstileToken string `json:"turnstileToken,omitempty" form:"cf-turnstile-response"`
}

// Submission is a contact submission accepted for delivery.
type Submission struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Company   string
	Message   string
	RemoteIP  string
	Received  time.Time
	Expiry    time.Time
}

func (s Submission) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// ContactResponse is the JSON body returned by /api/contact.
type ContactResponse struct {
	Success bool              `json:"success"`
	ID      string            `json:"id,omitempty"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
