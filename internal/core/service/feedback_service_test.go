package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

func TestFeedbackService_Submit(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewFeedbackService(repo, time.Hour, zerolog.Nop())

	before := time.Now().UTC()
	if err := svc.Submit(context.Background(), "alice", "great app", time.Time{}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected one record, got %d", len(repo.records))
	}
	rec := repo.records[0]
	if rec.Username != "alice" || rec.Text != "great app" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.SubmittedAt.Before(before) {
		t.Fatalf("zero timestamp should default to now, got %v", rec.SubmittedAt)
	}
}

func TestFeedbackService_Submit_ExplicitTimestamp(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewFeedbackService(repo, time.Hour, zerolog.Nop())

	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	if err := svc.Submit(context.Background(), "bob", "ok", at); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !repo.records[0].SubmittedAt.Equal(at) {
		t.Fatalf("explicit timestamp not kept: %v", repo.records[0].SubmittedAt)
	}
}

func TestFeedbackService_Submit_EmptyText(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{}, time.Hour, zerolog.Nop())

	if err := svc.Submit(context.Background(), "alice", "   ", time.Time{}); err != domain.ErrInvalidFeedback {
		t.Fatalf("expected ErrInvalidFeedback, got %v", err)
	}
}

func TestFeedbackService_Window(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubFeedbackRepo{records: []domain.FeedbackRecord{
		feedbackAt("fresh", now.Add(-10*time.Minute)),
		feedbackAt("stale", now.Add(-3*time.Hour)),
	}}
	svc := NewFeedbackService(repo, time.Hour, zerolog.Nop())

	window, err := svc.Window(context.Background())
	if err != nil {
		t.Fatalf("window failed: %v", err)
	}
	if len(window.Recent) != 1 || window.Recent[0].Text != "fresh" {
		t.Fatalf("unexpected recent bucket: %+v", window.Recent)
	}
	if len(window.Historical) != 1 || window.Historical[0].Text != "stale" {
		t.Fatalf("unexpected historical bucket: %+v", window.Historical)
	}
}
