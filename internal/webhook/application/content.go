package application

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lebgdecasa/full-typeform-responses/internal/forms"
	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/domain"
)

// promptPlaceholder is the single substitution point template authors must
// use. Rendering is a literal replacement, not a templating language.
const promptPlaceholder = "{webhook_data}"

const genericPromptTemplate = `You are a helpful assistant. Please analyze the following form responses and create a personalized HTML email response.

Form responses:
{webhook_data}

Please create a professional and helpful response in HTML format.`

// ContentService produces the email body for a submission. It never fails:
// a missing template falls back to the generic one, and a backend failure
// falls back to a deterministic templated message.
type ContentService struct {
	templates TemplateSource
	backend   TextGenerator
	logger    *log.Logger
}

// NewContentService constructs the service.
func NewContentService(templates TemplateSource, backend TextGenerator, logger *log.Logger) *ContentService {
	return &ContentService{templates: templates, backend: backend, logger: logger}
}

// Generate renders the form's prompt template over the extracted answers and
// asks the backend for a reply. The degraded flag reports whether any
// fallback path was taken.
func (s *ContentService) Generate(ctx context.Context, answers domain.Answers, policy forms.Policy) (body string, degraded bool) {
	template, err := s.templates.Load(policy.PromptTemplate)
	if err != nil {
		s.logf("prompt template %q unavailable, using generic template: %v", policy.PromptTemplate, err)
		template = genericPromptTemplate
		degraded = true
	}

	prompt := strings.ReplaceAll(template, promptPlaceholder, answers.PromptListing())

	generated, err := s.backend.Generate(ctx, prompt)
	if err != nil {
		s.logf("content generation failed for form %q, using fallback message: %v", policy.Name, err)
		return fallbackMessage(policy), true
	}

	return generated, degraded
}

func fallbackMessage(policy forms.Policy) string {
	return fmt.Sprintf("Thank you for your submission to %s. We received your responses and will get back to you soon.", policy.Name)
}

func (s *ContentService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
