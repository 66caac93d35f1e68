package main

import (
	"context"
	"log"
)

// modelCapability is the optional model-backed classification path. ok=false
// means "unavailable" for any reason; the facade does not distinguish why.
type modelCapability interface {
	Classify(ctx context.Context, text string) (ClassificationResult, bool)
}

// Classifier is the single classification entry point. It tries the model
// path when one was injected at construction and falls back to the keyword
// heuristic transparently. Classify always returns a result.
type Classifier struct {
	model     modelCapability // nil when no provider is configured
	heuristic HeuristicClassifier
}

func NewClassifier(model modelCapability) *Classifier {
	return &Classifier{model: model}
}

func (c *Classifier) Classify(ctx context.Context, text string) ClassificationResult {
	if c.model != nil {
		if result, ok := c.model.Classify(ctx, text); ok {
			log.Printf("classify source=model emotion=%s score=%.2f", result.Emotion, result.Score)
			return result
		}
	}
	result := c.heuristic.Classify(text)
	log.Printf("classify source=heuristic emotion=%s score=%.3f matches=%d", result.Emotion, result.Score, len(result.Keywords))
	return result
}
