package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/domain"
)

// SubmissionDocument は MongoDB 上での回答レコードのスキーマを Go 構造体として表現したもの。
type SubmissionDocument struct {
	ID          string           `bson:"_id"`
	FormID      string           `bson:"formId"`
	FormName    string           `bson:"formName"`
	Answers     bson.M           `bson:"answers"`
	Metadata    MetadataDocument `bson:"metadata"`
	CreatedAt   time.Time        `bson:"createdAt"`
	EmailSent   bool             `bson:"emailSent"`
	EmailSentAt *time.Time       `bson:"emailSentAt,omitempty"`
}

// MetadataDocument はイベント由来のメタデータを保持する埋め込みドキュメント。
type MetadataDocument struct {
	SubmittedAt string `bson:"submittedAt,omitempty"`
	FormID      string `bson:"formId,omitempty"`
	ResponseID  string `bson:"responseId,omitempty"`
	Token       string `bson:"token,omitempty"`
}

// FeedbackDocument はフィードバック 1 件分の追記専用ドキュメント。
type FeedbackDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	SubmissionID string             `bson:"submissionId"`
	Rating       string             `bson:"rating"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func newSubmissionDocument(submission *domain.Submission) SubmissionDocument {
	answers := make(bson.M, len(submission.Answers))
	for key, value := range submission.Answers {
		answers[key] = value.Native()
	}
	return SubmissionDocument{
		ID:       submission.ID,
		FormID:   submission.FormID,
		FormName: submission.FormName,
		Answers:  answers,
		Metadata: MetadataDocument{
			SubmittedAt: submission.Metadata.SubmittedAt,
			FormID:      submission.Metadata.FormID,
			ResponseID:  submission.Metadata.ResponseID,
			Token:       submission.Metadata.Token,
		},
		CreatedAt:   submission.CreatedAt,
		EmailSent:   submission.EmailSent,
		EmailSentAt: submission.EmailSentAt,
	}
}
