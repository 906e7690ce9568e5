package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EmailKey is the reserved answer key for the respondent's address. An
// email-typed answer always lands here, whatever its question title says.
const EmailKey = "email"

// ValueKind discriminates the shapes an extracted answer value can take.
type ValueKind int

const (
	KindText ValueKind = iota
	KindEmail
	KindChoice
	KindChoiceList
	KindNumber
	KindBoolean
)

// Value is the extracted form of a single answer.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Bool   bool
	Labels []string
}

// Native returns the value in the shape it is persisted and serialized with.
func (v Value) Native() any {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindBoolean:
		return v.Bool
	case KindChoiceList:
		return append([]string{}, v.Labels...)
	default:
		return v.Text
	}
}

// Display renders the value for the prompt listing.
func (v Value) Display() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindChoiceList:
		return strings.Join(v.Labels, ", ")
	default:
		return v.Text
	}
}

// Answers maps a question title (or synthesized field_<id> key) to its
// extracted value. Built once per event and never mutated afterwards.
type Answers map[string]Value

// Email returns the reserved email entry, or "" when the submission carried
// no email-typed answer.
func (a Answers) Email() string {
	return strings.TrimSpace(a[EmailKey].Text)
}

// PromptListing renders a newline-joined "key: value" listing of all answers
// except the reserved email key, with keys sorted for stable prompts.
func (a Answers) PromptListing() string {
	keys := make([]string, 0, len(a))
	for key := range a {
		if key == EmailKey {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", key, a[key].Display()))
	}
	return strings.Join(lines, "\n")
}

// Metadata carries per-event bookkeeping copied onto the submission record.
// Extraction of metadata is best effort; absent fields stay empty.
type Metadata struct {
	SubmittedAt string
	FormID      string
	ResponseID  string
	Token       string
}

// Extract normalizes the event into answers plus metadata. A missing answer
// list is valid (empty answers); a missing form_response structure is not.
func Extract(event *Event) (Answers, Metadata, error) {
	if event == nil || event.FormResponse == nil {
		return nil, Metadata{}, ErrMalformedPayload
	}

	response := event.FormResponse
	answers := make(Answers, len(response.Answers))
	var email *Value

	for _, raw := range response.Answers {
		key := answerKey(raw.Field)
		switch raw.Type {
		case "text":
			answers[key] = Value{Kind: KindText, Text: raw.Text}
		case "email":
			v := Value{Kind: KindEmail, Text: raw.Email}
			email = &v
		case "choice":
			var label string
			if raw.Choice != nil {
				label = raw.Choice.Label
			}
			answers[key] = Value{Kind: KindChoice, Text: label}
		case "choices":
			labels := make([]string, 0, len(raw.Choices))
			for _, choice := range raw.Choices {
				labels = append(labels, choice.Label)
			}
			answers[key] = Value{Kind: KindChoiceList, Labels: labels}
		case "number":
			var n float64
			if raw.Number != nil {
				n = *raw.Number
			}
			answers[key] = Value{Kind: KindNumber, Number: n}
		case "boolean":
			var b bool
			if raw.Boolean != nil {
				b = *raw.Boolean
			}
			answers[key] = Value{Kind: KindBoolean, Bool: b}
		default:
			// Unknown answer types are skipped so new provider features
			// never break extraction.
		}
	}

	// The reserved key is written last so an email-typed answer beats any
	// question whose derived key happens to be "email".
	if email != nil {
		answers[EmailKey] = *email
	}

	metadata := Metadata{
		SubmittedAt: response.SubmittedAt,
		FormID:      event.FormID,
		ResponseID:  response.ResponseID,
		Token:       response.Token,
	}

	return answers, metadata, nil
}

func answerKey(field FieldRef) string {
	if title := strings.TrimSpace(field.Title); title != "" {
		return title
	}
	id := strings.TrimSpace(field.ID)
	if id == "" {
		id = "unknown"
	}
	return "field_" + id
}
