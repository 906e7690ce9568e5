package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/domain"
)

// FeedbackRepository はフィードバックを追記専用で書き込む実装リポジトリ。
// No foreign-key check against submissions: orphaned feedback is accepted.
type FeedbackRepository struct {
	feedback *mongo.Collection
}

// NewFeedbackRepository はフィードバックコレクションを束縛したリポジトリを構築する。
func NewFeedbackRepository(db *mongo.Database, collection string) *FeedbackRepository {
	return &FeedbackRepository{feedback: db.Collection(collection)}
}

// Create appends one feedback record.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	doc := FeedbackDocument{
		ID:           primitive.NewObjectID(),
		SubmissionID: feedback.SubmissionID,
		Rating:       string(feedback.Rating),
		CreatedAt:    feedback.CreatedAt,
	}
	if _, err := r.feedback.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert feedback for submission %s: %w", feedback.SubmissionID, err)
	}
	return nil
}
