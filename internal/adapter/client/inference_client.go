package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/service"
)

// ZeroShotParameters holds the task parameters of a zero-shot request
type ZeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label,omitempty"`
}

// ZeroShotRequest represents a request to the inference endpoint
type ZeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters ZeroShotParameters `json:"parameters"`
}

// ZeroShotResponse represents the ranked answer of the inference endpoint
type ZeroShotResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// RequestObserver receives the outcome of every upstream call
type RequestObserver interface {
	ObserveUpstream(outcome string, duration time.Duration)
}

// Upstream call outcomes reported to the RequestObserver
const (
	OutcomeOK             = "ok"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
)

// InferenceClient is an HTTP client for a hosted zero-shot classification model
type InferenceClient struct {
	url        string
	token      string
	httpClient *http.Client
	observer   RequestObserver
}

// NewInferenceClient creates a new inference endpoint client
func NewInferenceClient(url, token string, timeout time.Duration, observer RequestObserver) *InferenceClient {
	return &InferenceClient{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		observer: observer,
	}
}

// ZeroShot sends text and a set of candidate labels for classification
func (c *InferenceClient) ZeroShot(ctx context.Context, text string, candidateLabels []string) (*ZeroShotResponse, error) {
	reqBody := ZeroShotRequest{
		Inputs: text,
		Parameters: ZeroShotParameters{
			CandidateLabels: candidateLabels,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(OutcomeTransportError, start)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.observe(OutcomeHTTPError, start)
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &service.UpstreamError{StatusCode: resp.StatusCode}
		}
		return nil, &service.UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result ZeroShotResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.observe(OutcomeTransportError, start)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	c.observe(OutcomeOK, start)

	return &result, nil
}

func (c *InferenceClient) observe(outcome string, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(outcome, time.Since(start))
	}
}
