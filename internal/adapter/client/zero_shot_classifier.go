package client

import (
	"context"
	"errors"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/service"
)

// ErrEmptyRanking is returned when the inference endpoint ranks no labels
var ErrEmptyRanking = errors.New("classification service returned no labels")

// ZeroShotClassifier adapts InferenceClient to the service.ZeroShotClassifier interface
type ZeroShotClassifier struct {
	client *InferenceClient
}

// NewZeroShotClassifier creates a new ZeroShotClassifier
func NewZeroShotClassifier(client *InferenceClient) service.ZeroShotClassifier {
	return &ZeroShotClassifier{client: client}
}

// Classify returns the top-ranked label and its score
func (c *ZeroShotClassifier) Classify(ctx context.Context, text string, candidateLabels []string) (*service.LabelScore, error) {
	resp, err := c.client.ZeroShot(ctx, text, candidateLabels)
	if err != nil {
		return nil, err
	}

	if len(resp.Labels) == 0 || len(resp.Scores) == 0 {
		return nil, ErrEmptyRanking
	}

	return &service.LabelScore{
		Label: resp.Labels[0],
		Score: resp.Scores[0],
	}, nil
}
