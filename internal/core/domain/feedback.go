package domain

import (
	"errors"
	"sort"
	"time"
)

var ErrInvalidFeedback = errors.New("feedback text is required")

// DefaultWindow is the rolling duration that separates recent feedback from
// historical feedback.
const DefaultWindow = time.Hour

// HistoricalLimit caps how many historical records a window view returns.
const HistoricalLimit = 10

// FeedbackRecord is a single piece of free-text feedback. Records are
// append-only: once submitted they are never mutated or deleted.
type FeedbackRecord struct {
	Text        string    `json:"feedback"`
	SubmittedAt time.Time `json:"timestamp"`
	Username    string    `json:"username"`
}

// FeedbackWindow is the derived two-bucket view over the live collection.
type FeedbackWindow struct {
	Recent     []FeedbackRecord
	Historical []FeedbackRecord
}

// PartitionFeedback splits records around the cutoff now-window. A record
// exactly at the cutoff counts as recent (inclusive lower bound). Historical
// records are sorted by submission time descending and capped at
// HistoricalLimit. The input slice is not modified.
func PartitionFeedback(records []FeedbackRecord, now time.Time, window time.Duration) FeedbackWindow {
	if window <= 0 {
		window = DefaultWindow
	}
	cutoff := now.Add(-window)

	w := FeedbackWindow{
		Recent:     make([]FeedbackRecord, 0, len(records)),
		Historical: make([]FeedbackRecord, 0, len(records)),
	}
	for _, r := range records {
		if r.SubmittedAt.Before(cutoff) {
			w.Historical = append(w.Historical, r)
		} else {
			w.Recent = append(w.Recent, r)
		}
	}

	sort.SliceStable(w.Historical, func(i, j int) bool {
		return w.Historical[i].SubmittedAt.After(w.Historical[j].SubmittedAt)
	})
	if len(w.Historical) > HistoricalLimit {
		w.Historical = w.Historical[:HistoricalLimit]
	}
	return w
}
