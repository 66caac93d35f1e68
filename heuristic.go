package main

import (
	"strings"
	"unicode"
)

// Intensity thresholds on the matches/tokens score. Inherited from the
// original scoring scheme and kept as-is for compatibility.
const (
	intensityHighThreshold   = 0.02
	intensityMediumThreshold = 0.01
)

// HeuristicClassifier scores text against the trigger lexicons. It is the
// always-available path: no model, no I/O, no failure mode.
type HeuristicClassifier struct{}

// Classify counts whole-word lexicon matches per category across every
// supported language at once and picks the category with the strictly
// highest count. Ties keep the first-seen category in enumeration order.
func (HeuristicClassifier) Classify(text string) ClassificationResult {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return neutralHeuristicResult()
	}

	counts := make(map[EmotionCategory]int, len(emotionOrder))
	matched := make(map[EmotionCategory][]string, len(emotionOrder))
	total := 0
	for _, tok := range tokens {
		for _, category := range emotionOrder {
			if triggerSets[category][tok] {
				counts[category]++
				matched[category] = append(matched[category], tok)
				total++
			}
		}
	}
	if total == 0 {
		return neutralHeuristicResult()
	}

	best := emotionOrder[0]
	for _, category := range emotionOrder[1:] {
		if counts[category] > counts[best] {
			best = category
		}
	}

	score := float64(counts[best]) / float64(len(tokens))
	return ClassificationResult{
		Emotion:    best,
		Score:      clamp01(score),
		Intensity:  intensityForScore(score),
		Keywords:   matched[best],
		Suggestion: fallbackSuggestions[best],
		Source:     SourceHeuristic,
	}
}

func neutralHeuristicResult() ClassificationResult {
	return ClassificationResult{
		Emotion:   EmotionNeutral,
		Score:     0,
		Intensity: IntensityLow,
		Keywords:  []string{},
		Source:    SourceHeuristic,
	}
}

func intensityForScore(score float64) string {
	switch {
	case score > intensityHighThreshold:
		return IntensityHigh
	case score > intensityMediumThreshold:
		return IntensityMedium
	default:
		return IntensityLow
	}
}

// tokenize lowercases and splits on whitespace, then strips surrounding
// punctuation from each token so "happy," still matches "happy". The token
// count used for scoring is the whitespace-field count.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		}))
	}
	return tokens
}
