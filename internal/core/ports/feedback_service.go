package ports

import (
	"context"
	"time"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

type FeedbackService interface {
	// Submit appends one feedback record for the given user. A zero
	// submittedAt defaults to the current time.
	Submit(ctx context.Context, username, text string, submittedAt time.Time) error
	// Window returns the recent/historical split over the live collection.
	Window(ctx context.Context) (domain.FeedbackWindow, error)
}
