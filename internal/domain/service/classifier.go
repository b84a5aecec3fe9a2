package service

import (
	"context"
	"fmt"
)

// LabelScore is the top-ranked label of a single zero-shot request
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ZeroShotClassifier defines the port to an external zero-shot text classifier
type ZeroShotClassifier interface {
	// Classify ranks candidateLabels against text and returns the best one
	Classify(ctx context.Context, text string, candidateLabels []string) (*LabelScore, error)
}

// UpstreamError is returned when the classification service answers with a non-success status
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API request failed with status code %d: %s", e.StatusCode, e.Body)
}
