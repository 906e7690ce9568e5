package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/application"
)

// Dispatcher delivers composed messages through the Resend API.
type Dispatcher struct {
	client  *resend.Client
	baseURL string
	logger  *log.Logger
}

// NewDispatcher constructs a dispatcher. publicBaseURL is the externally
// reachable address feedback links point back to.
func NewDispatcher(apiKey, publicBaseURL string, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		client:  resend.NewClient(apiKey),
		baseURL: publicBaseURL,
		logger:  logger,
	}
}

// Dispatch wraps the generated body with the feedback affordances and hands
// the message to Resend, returning the delivery identifier.
func (d *Dispatcher) Dispatch(ctx context.Context, email application.OutboundEmail) (string, error) {
	html := ComposeHTML(email.BodyHTML, d.baseURL, email.SubmissionID)

	sent, err := d.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("send email for submission %s: %w", email.SubmissionID, err)
	}

	if d.logger != nil {
		d.logger.Printf("email sent for submission %s (delivery id %s)", email.SubmissionID, sent.Id)
	}
	return sent.Id, nil
}
