package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lebgdecasa/full-typeform-responses/internal/forms"
	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/domain"
)

// RejectReason is the machine-readable cause of a rejected event. Rejections
// only happen before the submission record exists; every later failure
// degrades the outcome instead.
type RejectReason string

const (
	RejectNone            RejectReason = ""
	RejectNoFormID        RejectReason = "no_form_id"
	RejectUnsupportedForm RejectReason = "unsupported_form"
	RejectBadPayload      RejectReason = "bad_payload"
	RejectNoEmail         RejectReason = "no_email"
	RejectPersistFailed   RejectReason = "persist_failed"
)

// Result is the outcome of one pipeline run. Either Reject is set, or the
// submission fields are populated and Degraded reports whether content
// generation or delivery fell back.
type Result struct {
	SubmissionID string
	FormID       string
	FormName     string
	Degraded     bool
	Reject       RejectReason
	RejectDetail string
}

// Rejected reports whether the event was turned away before persistence.
func (r Result) Rejected() bool {
	return r.Reject != RejectNone
}

// Pipeline sequences one inbound event through identification, policy
// resolution, extraction, persistence, generation and dispatch. Each run is
// stateless and independent; collaborators are injected once at startup.
type Pipeline struct {
	policies    *forms.Registry
	submissions SubmissionRepository
	content     *ContentService
	mailer      EmailDispatcher
	logger      *log.Logger
}

// PipelineConfig lists the collaborators a Pipeline needs.
type PipelineConfig struct {
	Policies    *forms.Registry
	Submissions SubmissionRepository
	Content     *ContentService
	Mailer      EmailDispatcher
	Logger      *log.Logger
}

// NewPipeline constructs the orchestrator.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		policies:    cfg.Policies,
		submissions: cfg.Submissions,
		content:     cfg.Content,
		mailer:      cfg.Mailer,
		logger:      cfg.Logger,
	}
}

// Process runs the full pipeline for one event.
func (p *Pipeline) Process(ctx context.Context, event *domain.Event) Result {
	formID, err := event.ResolveFormID()
	if err != nil {
		return Result{Reject: RejectNoFormID, RejectDetail: "No form ID found"}
	}

	policy, err := p.policies.Lookup(formID)
	if err != nil {
		p.logf("unsupported form %q (supported: %v)", formID, p.policies.SupportedIDs())
		return Result{
			Reject:       RejectUnsupportedForm,
			RejectDetail: fmt.Sprintf("Unsupported form ID: %s", formID),
		}
	}

	answers, metadata, err := domain.Extract(event)
	if err != nil {
		return Result{Reject: RejectBadPayload, RejectDetail: "Malformed webhook payload"}
	}

	email := answers.Email()
	if email == "" {
		return Result{Reject: RejectNoEmail, RejectDetail: "No email found"}
	}

	submission := &domain.Submission{
		ID:        uuid.NewString(),
		FormID:    formID,
		FormName:  policy.Name,
		Answers:   answers,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.submissions.Create(ctx, submission); err != nil {
		p.logf("submission persist failed for form %q: %v", formID, err)
		return Result{Reject: RejectPersistFailed, RejectDetail: "Failed to store submission"}
	}

	body, degraded := p.content.Generate(ctx, answers, policy)

	outbound := OutboundEmail{
		From:         policy.FromEmail,
		To:           email,
		Subject:      policy.EmailSubject,
		BodyHTML:     body,
		SubmissionID: submission.ID,
	}
	if _, err := p.mailer.Dispatch(ctx, outbound); err != nil {
		// The record already exists, so a failed send degrades the outcome
		// instead of rejecting it. emailSent stays false as the durable
		// trace; resending is a manual, external concern.
		p.logf("email dispatch failed for submission %s: %v", submission.ID, err)
		degraded = true
	} else if err := p.submissions.MarkEmailSent(ctx, submission.ID, time.Now().UTC()); err != nil {
		p.logf("failed to mark submission %s as sent: %v", submission.ID, err)
	}

	return Result{
		SubmissionID: submission.ID,
		FormID:       formID,
		FormName:     policy.Name,
		Degraded:     degraded,
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
