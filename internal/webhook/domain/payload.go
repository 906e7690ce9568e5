package domain

import "errors"

var (
	// ErrNoFormID is returned when neither the top-level form_id nor the
	// nested form_definition.id is present in the event.
	ErrNoFormID = errors.New("no form ID found")
	// ErrMalformedPayload is returned when the event carries no parseable
	// form_response structure at all.
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

// Event is the inbound webhook payload as delivered by the form provider.
// Every field is optional; the provider's payload shape has varied across
// versions, so readers must go through the resolution helpers instead of
// touching fields directly.
type Event struct {
	EventID        string          `json:"event_id,omitempty"`
	EventType      string          `json:"event_type,omitempty"`
	FormID         string          `json:"form_id,omitempty"`
	FormDefinition *FormDefinition `json:"form_definition,omitempty"`
	FormResponse   *FormResponse   `json:"form_response,omitempty"`
}

// FormDefinition is the nested form descriptor some payload versions carry
// instead of a top-level form_id.
type FormDefinition struct {
	ID string `json:"id,omitempty"`
}

// FormResponse wraps the respondent's answers and per-response metadata.
type FormResponse struct {
	FormID      string      `json:"form_id,omitempty"`
	SubmittedAt string      `json:"submitted_at,omitempty"`
	ResponseID  string      `json:"response_id,omitempty"`
	Token       string      `json:"token,omitempty"`
	Answers     []RawAnswer `json:"answers,omitempty"`
}

// RawAnswer is one answer entry. Which value field is populated depends on
// the type discriminant; unknown discriminants are skipped during extraction.
type RawAnswer struct {
	Type    string      `json:"type"`
	Field   FieldRef    `json:"field"`
	Text    string      `json:"text,omitempty"`
	Email   string      `json:"email,omitempty"`
	Number  *float64    `json:"number,omitempty"`
	Boolean *bool       `json:"boolean,omitempty"`
	Choice  *ChoiceRef  `json:"choice,omitempty"`
	Choices []ChoiceRef `json:"choices,omitempty"`
}

// FieldRef identifies the question an answer belongs to.
type FieldRef struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Type  string `json:"type,omitempty"`
}

// ChoiceRef is a selected option label.
type ChoiceRef struct {
	Label string `json:"label,omitempty"`
}

// ResolveFormID returns the form identifier for the event. The top-level
// form_id wins; older payloads only carry form_definition.id.
func (e *Event) ResolveFormID() (string, error) {
	if e.FormID != "" {
		return e.FormID, nil
	}
	if e.FormDefinition != nil && e.FormDefinition.ID != "" {
		return e.FormDefinition.ID, nil
	}
	return "", ErrNoFormID
}
