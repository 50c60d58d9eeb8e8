package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

const feedbackCollection = "sentiment"

type MongoFeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *MongoFeedbackRepository {
	return &MongoFeedbackRepository{coll: db.Collection(feedbackCollection)}
}

type mongoFeedback struct {
	Text        string `bson:"feedback"`
	SubmittedAt int64  `bson:"timestamp"`
	Username    string `bson:"username"`
}

func (r *MongoFeedbackRepository) Append(ctx context.Context, record *domain.FeedbackRecord) error {
	doc := mongoFeedback{
		Text:        record.Text,
		SubmittedAt: record.SubmittedAt.Unix(),
		Username:    record.Username,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepository) FindAll(ctx context.Context) ([]domain.FeedbackRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoFeedback
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}

	records := make([]domain.FeedbackRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, domain.FeedbackRecord{
			Text:        d.Text,
			SubmittedAt: unixToTime(d.SubmittedAt),
			Username:    d.Username,
		})
	}
	return records, nil
}
