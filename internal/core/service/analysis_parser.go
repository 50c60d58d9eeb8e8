package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

// replyShape classifies the model's reply before any extraction so each
// branch carries its own contract.
type replyShape int

const (
	shapeUnparsable replyShape = iota
	// shapeThreeLine is the clean reply: exactly the three requested lines.
	shapeThreeLine
	// shapeVerbose is the common decorated reply: labeled topics and
	// sentiment lines, a filler line, then bulleted trend lines.
	shapeVerbose
)

func classifyReply(lines []string) replyShape {
	switch {
	case len(lines) == 3:
		return shapeThreeLine
	case len(lines) > 3:
		return shapeVerbose
	default:
		return shapeUnparsable
	}
}

// ParseAnalysisReply turns the model's free text into an AnalysisResult.
// Replies that fit neither shape fail with domain.ErrUnparsableAnalysis;
// partial extraction would silently hand garbage to the caller.
func ParseAnalysisReply(raw string) (*domain.AnalysisResult, error) {
	lines := nonEmptyLines(raw)

	switch classifyReply(lines) {
	case shapeThreeLine:
		return parseThreeLine(lines)
	case shapeVerbose:
		return parseVerbose(lines)
	default:
		return nil, fmt.Errorf("%w: %d usable lines", domain.ErrUnparsableAnalysis, len(lines))
	}
}

// parseThreeLine treats the lines positionally as topics, sentiment, trends.
func parseThreeLine(lines []string) (*domain.AnalysisResult, error) {
	topics := splitList(labelValue(lines[0]))
	sentiment := capitalize(labelValue(lines[1]))
	trends := splitList(labelValue(lines[2]))

	if len(topics) == 0 || sentiment == "" {
		return nil, fmt.Errorf("%w: empty sections in three-line reply", domain.ErrUnparsableAnalysis)
	}
	return &domain.AnalysisResult{Topics: topics, Sentiment: sentiment, Trends: trends}, nil
}

// parseVerbose reads topics from line 1 and sentiment from line 2 after
// stripping emphasis markers, and rebuilds trends from line 4 onward with
// each line's leading bullet or number token dropped.
func parseVerbose(lines []string) (*domain.AnalysisResult, error) {
	topicsRaw := labeledValue(stripEmphasis(lines[0]))
	sentimentRaw := labeledValue(stripEmphasis(lines[1]))
	if topicsRaw == "" || sentimentRaw == "" {
		return nil, fmt.Errorf("%w: missing topics or sentiment label", domain.ErrUnparsableAnalysis)
	}

	parts := make([]string, 0, len(lines)-3)
	for _, line := range lines[3:] {
		parts = append(parts, dropFirstToken(line))
	}
	trends := splitList(strings.Join(parts, ","))
	if len(trends) == 0 {
		return nil, fmt.Errorf("%w: no trend lines", domain.ErrUnparsableAnalysis)
	}

	return &domain.AnalysisResult{
		Topics:    splitList(topicsRaw),
		Sentiment: capitalize(sentimentRaw),
		Trends:    trends,
	}, nil
}

func nonEmptyLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// labelValue strips a leading bullet marker and, when a label like
// "Key topics:" is present, returns only the content after it.
func labelValue(line string) string {
	line = strings.TrimLeft(line, "-*• \t")
	if i := strings.Index(line, ":"); i >= 0 {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}

// labeledValue returns the content after a "Label:" prefix, or "" when the
// line carries no label at all. The verbose path insists on labels; without
// them there is nothing trustworthy to extract.
func labeledValue(line string) string {
	i := strings.Index(line, ":")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(line[i+1:])
}

// stripEmphasis removes markdown emphasis markers around labels.
func stripEmphasis(line string) string {
	return strings.NewReplacer("*", "", "_", "").Replace(line)
}

// dropFirstToken removes the first whitespace-delimited token, assumed to be
// a bullet or number prefix on a trend line.
func dropFirstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) <= 1 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := capitalize(p); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// how labels like "positive" are normalised for display.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
