package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ynot-advisory/landing/models"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{FromEmail: "hello@example.com"}, nil)
	assert.Nil(t, sender)
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{APIKey: "test-key", FromEmail: "hello@example.com"}, nil)
	require.NotNil(t, sender)
	assert.Equal(t, "Ynot Advisory", sender.fromName)
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{}
	err := sender.Send(context.Background(), EmailMessage{To: "inbox@example.com", Subject: "x"})
	assert.Error(t, err)
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := NewStubEmailSender(nil)
	assert.NoError(t, sender.Send(context.Background(), EmailMessage{To: "inbox@example.com"}))
}

func TestContactEmail(t *testing.T) {
	sub := models.Submission{
		ID:        "abc-123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Company:   "Engines & Co",
		Message:   "We need help\nwith <growth>.",
		Received:  time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
	}

	msg := ContactEmail("inbox@ynot.example", sub)

	assert.Equal(t, "inbox@ynot.example", msg.To)
	assert.Equal(t, "ada@example.com", msg.ReplyTo)
	assert.Equal(t, "Ada Lovelace", msg.ReplyToName)
	assert.Equal(t, "New enquiry from Ada Lovelace (Engines & Co)", msg.Subject)
	assert.Contains(t, msg.Body, "Company: Engines & Co")
	assert.Contains(t, msg.Body, "Reference: abc-123")
	assert.Contains(t, msg.HTML, "Engines &amp; Co")
	assert.Contains(t, msg.HTML, "with &lt;growth&gt;.")
	assert.Contains(t, msg.HTML, "help<br>with")
}

func TestContactEmail_NoCompany(t *testing.T) {
	msg := ContactEmail("inbox@ynot.example", models.Submission{FirstName: "A", LastName: "B", Email: "a@b.com", Message: "1234567890"})
	assert.Equal(t, "New enquiry from A B", msg.Subject)
	assert.NotContains(t, msg.Body, "Company:")
}
