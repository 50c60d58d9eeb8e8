package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
	"github.com/pulsefeed/feedback-analytics/internal/core/ports"
)

// FeedbackService handles submission and the windowed read view.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	window time.Duration
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, window time.Duration, logger zerolog.Logger) *FeedbackService {
	if window <= 0 {
		window = domain.DefaultWindow
	}
	return &FeedbackService{repo: repo, window: window, logger: logger}
}

func (s *FeedbackService) Submit(ctx context.Context, username, text string, submittedAt time.Time) error {
	if strings.TrimSpace(text) == "" {
		return domain.ErrInvalidFeedback
	}
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	record := &domain.FeedbackRecord{
		Text:        text,
		SubmittedAt: submittedAt,
		Username:    username,
	}
	if err := s.repo.Append(ctx, record); err != nil {
		return err
	}

	s.logger.Debug().Str("username", username).Time("submitted_at", submittedAt).Msg("feedback recorded")
	return nil
}

// Window recomputes the recent/historical split on every call; the partition
// is a derived view, never stored.
func (s *FeedbackService) Window(ctx context.Context) (domain.FeedbackWindow, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.FeedbackWindow{}, err
	}
	return domain.PartitionFeedback(records, time.Now().UTC(), s.window), nil
}
