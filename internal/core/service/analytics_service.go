package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
	"github.com/pulsefeed/feedback-analytics/internal/core/ports"
)

const defaultCompletionTimeout = 30 * time.Second

// analyzePrompt asks for exactly three labeled single-line sections. The
// model is not contractually bound to honour it, hence the defensive parser.
const analyzePrompt = "Analyze the following customer feedback: \n%s\n\n" +
	"Provide the analysis in the following format with each key-value pair on a new line: \n" +
	"Key topics: comma-separated list without bullet points \n" +
	"Overall Sentiment: Positive, Negative, or Neutral \n" +
	"Emerging trends: comma-separated list without bullet points"

// AnalyticsService aggregates the feedback corpus and distills it through
// the language model. One attempt per request, bounded by timeout; failures
// surface as domain.ErrUpstream rather than hanging or leaking raw output.
type AnalyticsService struct {
	feedback ports.FeedbackRepository
	llm      ports.CompletionClient
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewAnalyticsService(feedback ports.FeedbackRepository, llm ports.CompletionClient, timeout time.Duration, logger zerolog.Logger) *AnalyticsService {
	if timeout <= 0 {
		timeout = defaultCompletionTimeout
	}
	return &AnalyticsService{feedback: feedback, llm: llm, timeout: timeout, logger: logger}
}

func (s *AnalyticsService) Analyze(ctx context.Context) (*domain.AnalysisResult, error) {
	records, err := s.feedback.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(records))
	for _, r := range records {
		texts = append(texts, r.Text)
	}
	combined := strings.Join(texts, " ")
	if strings.TrimSpace(combined) == "" {
		return nil, domain.ErrNoFeedback
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.llm.Complete(callCtx, fmt.Sprintf(analyzePrompt, combined))
	if err != nil {
		s.logger.Error().Err(err).Msg("completion call failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	result, err := ParseAnalysisReply(reply)
	if err != nil {
		s.logger.Error().Err(err).Int("reply_len", len(reply)).Msg("analysis reply did not parse")
		return nil, err
	}
	return result, nil
}
