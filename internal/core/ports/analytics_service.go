package ports

import (
	"context"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

type AnalyticsService interface {
	// Analyze aggregates all feedback text, submits it to the language
	// model, and parses the reply into a structured result.
	Analyze(ctx context.Context) (*domain.AnalysisResult, error)
}
