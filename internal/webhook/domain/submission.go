package domain

import (
	"fmt"
	"time"
)

// Submission is the persisted record of one processed form submission.
// Created once per successfully extracted event; the only update it ever
// receives is the email-sent flag flip after delivery.
type Submission struct {
	ID          string
	FormID      string
	FormName    string
	Answers     Answers
	Metadata    Metadata
	CreatedAt   time.Time
	EmailSent   bool
	EmailSentAt *time.Time
}

// Rating is a feedback rating from the delivered email's feedback links.
type Rating string

const (
	RatingPositive Rating = "positive"
	RatingNeutral  Rating = "neutral"
	RatingNegative Rating = "negative"
)

// ParseRating validates a query-parameter rating value.
func ParseRating(raw string) (Rating, error) {
	switch Rating(raw) {
	case RatingPositive, RatingNeutral, RatingNegative:
		return Rating(raw), nil
	}
	return "", fmt.Errorf("unknown rating %q", raw)
}

// Emoji returns the display glyph used on confirmation pages and in emails.
func (r Rating) Emoji() string {
	switch r {
	case RatingPositive:
		return "😊"
	case RatingNegative:
		return "☹️"
	default:
		return "😐"
	}
}

// Feedback is one recorded feedback click. The submission reference is not
// enforced; feedback for unknown submissions is stored as-is.
type Feedback struct {
	SubmissionID string
	Rating       Rating
	CreatedAt    time.Time
}
