package application

import (
	"context"
	"time"

	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/domain"
)

// SubmissionRepository persists submission records.
// SubmissionRepository は受信した回答レコードを書き込むためのポート。
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
	MarkEmailSent(ctx context.Context, submissionID string, sentAt time.Time) error
}

// FeedbackRepository appends feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
}

// TextGenerator is the generative-text backend: one prompt in, one
// generated body out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TemplateSource loads prompt templates by the reference a form policy names.
type TemplateSource interface {
	Load(ref string) (string, error)
}

// OutboundEmail is the message handed to the delivery collaborator. BodyHTML
// is the generated content only; the dispatcher wraps it with the feedback
// affordances before sending.
type OutboundEmail struct {
	From         string
	To           string
	Subject      string
	BodyHTML     string
	SubmissionID string
}

// EmailDispatcher composes and sends the final message, returning an opaque
// delivery handle.
type EmailDispatcher interface {
	Dispatch(ctx context.Context, email OutboundEmail) (string, error)
}

// FeedbackService records feedback clicks. Appends are unconditional: two
// clicks on the same submission produce two records, and unknown submission
// identifiers are tolerated.
type FeedbackService struct {
	feedback FeedbackRepository
}

// NewFeedbackService constructs the service.
func NewFeedbackService(feedback FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// Record appends one feedback record for the submission.
func (s *FeedbackService) Record(ctx context.Context, submissionID string, rating domain.Rating) error {
	return s.feedback.Create(ctx, &domain.Feedback{
		SubmissionID: submissionID,
		Rating:       rating,
		CreatedAt:    time.Now().UTC(),
	})
}
