package domain

import "errors"

var ErrNoFeedback = errors.New("no feedback data available")
var ErrUpstream = errors.New("analytics upstream failure")
var ErrUnparsableAnalysis = errors.New("unparsable analysis reply")

// AnalysisResult is the structured summary distilled from the language
// model's free-text reply. Derived and ephemeral: recomputed on each
// analytics request, never persisted.
type AnalysisResult struct {
	Topics    []string `json:"topics"`
	Sentiment string   `json:"sentiment"`
	Trends    []string `json:"trends"`
}
