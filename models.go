package main

import (
	"strings"
	"time"
)

// EmotionCategory is the closed set of labels a classification can produce.
type EmotionCategory string

const (
	EmotionPositive EmotionCategory = "positive"
	EmotionNegative EmotionCategory = "negative"
	EmotionAnxiety  EmotionCategory = "anxiety"
	EmotionAnger    EmotionCategory = "anger"
	EmotionNeutral  EmotionCategory = "neutral"
)

// emotionOrder is the scan order for the heuristic classifier. Ties on
// equal match counts keep the first-seen category, so the order matters.
var emotionOrder = []EmotionCategory{
	EmotionPositive,
	EmotionNegative,
	EmotionAnxiety,
	EmotionAnger,
}

// ParseEmotion maps a raw string onto the closed category set.
func ParseEmotion(s string) (EmotionCategory, bool) {
	switch EmotionCategory(strings.ToLower(strings.TrimSpace(s))) {
	case EmotionPositive:
		return EmotionPositive, true
	case EmotionNegative:
		return EmotionNegative, true
	case EmotionAnxiety:
		return EmotionAnxiety, true
	case EmotionAnger:
		return EmotionAnger, true
	case EmotionNeutral:
		return EmotionNeutral, true
	}
	return EmotionNeutral, false
}

const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

const (
	SourceModel     = "model"
	SourceHeuristic = "heuristic"
)

// ClassificationResult is the uniform output shape of both classifier paths.
type ClassificationResult struct {
	Emotion    EmotionCategory `json:"emotion"`
	Score      float64         `json:"score"` // always clamped into [0,1]
	Intensity  string          `json:"intensity"`
	Keywords   []string        `json:"keywords"`
	Suggestion string          `json:"suggestion"`
	Source     string          `json:"source"` // "model" or "heuristic"
}

// EmotionRecord is one persisted classification. Records are immutable after
// creation; only retention eviction or a full clear removes them.
type EmotionRecord struct {
	ID         int64           `json:"id"`
	Timestamp  int64           `json:"timestamp"` // epoch ms
	URL        string          `json:"url"`
	Title      string          `json:"title"`
	Emotion    EmotionCategory `json:"emotion"`
	Score      float64         `json:"score"`
	Intensity  string          `json:"intensity"`
	Keywords   []string        `json:"keywords"`
	Suggestion string          `json:"suggestion"`
	Source     string          `json:"source"`
}

// ExerciseRecord logs a wellness exercise the user started or finished.
type ExerciseRecord struct {
	ID              int64  `json:"id"`
	Timestamp       int64  `json:"timestamp"` // epoch ms
	ExerciseID      string `json:"exerciseId"`
	DurationSeconds int64  `json:"durationSeconds"`
	Completed       bool   `json:"completed"`
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
