package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/domain"
)

// SubmissionRepository は回答レコード集約を MongoDB で扱う実装リポジトリ。
// Writes only: the pipeline never reads its own records back.
type SubmissionRepository struct {
	submissions *mongo.Collection
}

// NewSubmissionRepository は回答コレクションを束縛したリポジトリを構築する。
func NewSubmissionRepository(db *mongo.Database, collection string) *SubmissionRepository {
	return &SubmissionRepository{submissions: db.Collection(collection)}
}

// Create inserts the submission under its generated identifier.
func (r *SubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	if _, err := r.submissions.InsertOne(ctx, newSubmissionDocument(submission)); err != nil {
		return fmt.Errorf("insert submission %s: %w", submission.ID, err)
	}
	return nil
}

// MarkEmailSent flips the email-sent flag after a successful delivery.
func (r *SubmissionRepository) MarkEmailSent(ctx context.Context, submissionID string, sentAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"emailSent":   true,
		"emailSentAt": sentAt,
	}}
	result, err := r.submissions.UpdateByID(ctx, submissionID, update)
	if err != nil {
		return fmt.Errorf("mark submission %s sent: %w", submissionID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mark submission %s sent: no such record", submissionID)
	}
	return nil
}
