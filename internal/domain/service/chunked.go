package service

import (
	"context"
	"errors"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/entity"
)

// BatchSize is the number of candidate labels sent per upstream request. It is not configurable.
const BatchSize = 10

// ErrNoCandidates is returned when classification is requested over an empty label set
var ErrNoCandidates = errors.New("no candidate labels")

// BestLabel is the winner of a chunked classification
type BestLabel struct {
	Label string  `json:"label"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ChunkedClassifier runs a zero-shot classifier over consecutive label batches and keeps the best score
type ChunkedClassifier struct {
	classifier ZeroShotClassifier
}

// NewChunkedClassifier creates a ChunkedClassifier sending BatchSize labels per request
func NewChunkedClassifier(classifier ZeroShotClassifier) *ChunkedClassifier {
	return &ChunkedClassifier{classifier: classifier}
}

// Chunk partitions labels into consecutive batches of at most size elements
func Chunk(labels []string, size int) [][]string {
	batches := make([][]string, 0, (len(labels)+size-1)/size)
	for i := 0; i < len(labels); i += size {
		end := min(i+size, len(labels))
		batches = append(batches, labels[i:end])
	}
	return batches
}

// Classify sends each batch in order and returns the strictly highest scoring top label.
// Ties keep the earlier batch. Any batch failure aborts the whole classification.
func (c *ChunkedClassifier) Classify(ctx context.Context, text string, labels []string) (*BestLabel, error) {
	if len(labels) == 0 {
		return nil, ErrNoCandidates
	}

	var best *BestLabel
	bestScore := -1.0
	for _, batch := range Chunk(labels, BatchSize) {
		top, err := c.classifier.Classify(ctx, text, batch)
		if err != nil {
			return nil, err
		}
		if top.Score > bestScore {
			bestScore = top.Score
			best = &BestLabel{Label: top.Label, Score: top.Score}
		}
	}
	if best == nil {
		return nil, ErrNoCandidates
	}

	best.Name = entity.LabelName(best.Label)
	return best, nil
}
