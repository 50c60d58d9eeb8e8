package ports

import (
	"context"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

// FeedbackRepository defines the interface for the append-only feedback
// collection.
type FeedbackRepository interface {
	Append(ctx context.Context, record *domain.FeedbackRecord) error
	FindAll(ctx context.Context) ([]domain.FeedbackRecord, error)
}
