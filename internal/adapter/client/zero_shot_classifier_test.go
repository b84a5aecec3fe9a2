package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZeroShotClassifier_Classify(t *testing.T) {
	t.Run("returns top-ranked label", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(ZeroShotResponse{
				Labels: []string{"right", "left", "front"},
				Scores: []float64{0.6, 0.3, 0.1},
			})
		}))
		defer server.Close()

		classifier := NewZeroShotClassifier(NewInferenceClient(server.URL, "hf_test", 5*time.Second, nil))

		result, err := classifier.Classify(context.Background(), "on the right", []string{"front", "left", "right"})

		assert.NoError(t, err)
		assert.Equal(t, "right", result.Label)
		assert.Equal(t, 0.6, result.Score)
	})

	t.Run("empty ranking is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(ZeroShotResponse{})
		}))
		defer server.Close()

		classifier := NewZeroShotClassifier(NewInferenceClient(server.URL, "hf_test", 5*time.Second, nil))

		result, err := classifier.Classify(context.Background(), "text", []string{"front"})

		assert.ErrorIs(t, err, ErrEmptyRanking)
		assert.Nil(t, result)
	})

	t.Run("propagates client errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		classifier := NewZeroShotClassifier(NewInferenceClient(server.URL, "bad", 5*time.Second, nil))

		result, err := classifier.Classify(context.Background(), "text", []string{"front"})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
