package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestExtract_MalformedPayload(t *testing.T) {
	_, _, err := Extract(&Event{FormID: "KdYBmq7K"})
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, _, err = Extract(nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestExtract_MissingAnswersIsValid(t *testing.T) {
	answers, _, err := Extract(&Event{FormResponse: &FormResponse{}})
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestExtract_AllKinds(t *testing.T) {
	event := &Event{
		FormID: "KdYBmq7K",
		FormResponse: &FormResponse{
			SubmittedAt: "2025-03-01T10:00:00Z",
			ResponseID:  "resp-1",
			Token:       "tok-1",
			Answers: []RawAnswer{
				{Type: "text", Field: FieldRef{Title: "Goal"}, Text: "Grow revenue"},
				{Type: "email", Field: FieldRef{Title: "Your email"}, Email: "a@example.com"},
				{Type: "choice", Field: FieldRef{Title: "Stage"}, Choice: &ChoiceRef{Label: "Seed"}},
				{Type: "choices", Field: FieldRef{Title: "Channels"}, Choices: []ChoiceRef{{Label: "SEO"}, {Label: "Ads"}}},
				{Type: "number", Field: FieldRef{Title: "Team size"}, Number: floatPtr(12)},
				{Type: "boolean", Field: FieldRef{Title: "Funded"}, Boolean: boolPtr(true)},
			},
		},
	}

	answers, metadata, err := Extract(event)
	require.NoError(t, err)

	assert.Equal(t, "Grow revenue", answers["Goal"].Text)
	assert.Equal(t, "a@example.com", answers.Email())
	assert.Equal(t, "Seed", answers["Stage"].Text)
	assert.Equal(t, []string{"SEO", "Ads"}, answers["Channels"].Labels)
	assert.Equal(t, float64(12), answers["Team size"].Number)
	assert.True(t, answers["Funded"].Bool)

	// The email answer lives only under the reserved key.
	_, hasTitleKey := answers["Your email"]
	assert.False(t, hasTitleKey)

	assert.Equal(t, "2025-03-01T10:00:00Z", metadata.SubmittedAt)
	assert.Equal(t, "KdYBmq7K", metadata.FormID)
	assert.Equal(t, "resp-1", metadata.ResponseID)
	assert.Equal(t, "tok-1", metadata.Token)
}

func TestExtract_EmailBeatsTitleCollision(t *testing.T) {
	event := &Event{
		FormResponse: &FormResponse{
			Answers: []RawAnswer{
				{Type: "email", Field: FieldRef{Title: "Contact"}, Email: "real@example.com"},
				{Type: "text", Field: FieldRef{Title: "email"}, Text: "not an address"},
			},
		},
	}

	answers, _, err := Extract(event)
	require.NoError(t, err)
	assert.Equal(t, "real@example.com", answers.Email())
}

func TestExtract_UnknownKindSkipped(t *testing.T) {
	event := &Event{
		FormResponse: &FormResponse{
			Answers: []RawAnswer{
				{Type: "file_url", Field: FieldRef{Title: "Upload"}},
				{Type: "text", Field: FieldRef{Title: "Goal"}, Text: "Grow"},
			},
		},
	}

	answers, _, err := Extract(event)
	require.NoError(t, err)
	assert.Len(t, answers, 1)
	_, hasUpload := answers["Upload"]
	assert.False(t, hasUpload)
}

func TestExtract_SynthesizedFieldKey(t *testing.T) {
	event := &Event{
		FormResponse: &FormResponse{
			Answers: []RawAnswer{
				{Type: "text", Field: FieldRef{ID: "abc123"}, Text: "no title"},
				{Type: "text", Field: FieldRef{}, Text: "no id either"},
			},
		},
	}

	answers, _, err := Extract(event)
	require.NoError(t, err)
	assert.Equal(t, "no title", answers["field_abc123"].Text)
	assert.Equal(t, "no id either", answers["field_unknown"].Text)
}

func TestPromptListing_ExcludesEmailAndSortsKeys(t *testing.T) {
	answers := Answers{
		"Goal":      {Kind: KindText, Text: "Grow revenue"},
		"email":     {Kind: KindEmail, Text: "a@example.com"},
		"Channels":  {Kind: KindChoiceList, Labels: []string{"SEO", "Ads"}},
		"Team size": {Kind: KindNumber, Number: 12},
	}

	listing := answers.PromptListing()
	assert.Equal(t, "Channels: SEO, Ads\nGoal: Grow revenue\nTeam size: 12", listing)
	assert.NotContains(t, listing, "a@example.com")
}

func TestValueNative(t *testing.T) {
	assert.Equal(t, "hi", Value{Kind: KindText, Text: "hi"}.Native())
	assert.Equal(t, 3.5, Value{Kind: KindNumber, Number: 3.5}.Native())
	assert.Equal(t, true, Value{Kind: KindBoolean, Bool: true}.Native())
	assert.Equal(t, []string{"a"}, Value{Kind: KindChoiceList, Labels: []string{"a"}}.Native())
}
