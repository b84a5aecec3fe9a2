package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/service"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveUpstream(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func TestInferenceClient_ZeroShot(t *testing.T) {
	t.Run("successful classification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

			var req ZeroShotRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "a loud explosion", req.Inputs)
			assert.Equal(t, []string{"Blast: loud explosion", "Spark: small spark"}, req.Parameters.CandidateLabels)

			resp := ZeroShotResponse{
				Sequence: req.Inputs,
				Labels:   []string{"Blast: loud explosion", "Spark: small spark"},
				Scores:   []float64{0.91, 0.09},
			}
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		observer := &recordingObserver{}
		client := NewInferenceClient(server.URL, "hf_test", 5*time.Second, observer)

		resp, err := client.ZeroShot(context.Background(), "a loud explosion",
			[]string{"Blast: loud explosion", "Spark: small spark"})

		require.NoError(t, err)
		assert.Equal(t, "Blast: loud explosion", resp.Labels[0])
		assert.Equal(t, 0.91, resp.Scores[0])
		assert.Equal(t, []string{OutcomeOK}, observer.outcomes)
	})

	t.Run("non-200 status returns upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"Model is currently loading"}`))
		}))
		defer server.Close()

		observer := &recordingObserver{}
		client := NewInferenceClient(server.URL, "hf_test", 5*time.Second, observer)

		resp, err := client.ZeroShot(context.Background(), "text", []string{"left"})

		assert.Nil(t, resp)
		var upstreamErr *service.UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusServiceUnavailable, upstreamErr.StatusCode)
		assert.Contains(t, upstreamErr.Body, "Model is currently loading")
		assert.Equal(t, []string{OutcomeHTTPError}, observer.outcomes)
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "hf_test", 5*time.Second, nil)

		resp, err := client.ZeroShot(context.Background(), "text", []string{"left"})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("timeout bounds a hung upstream", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		observer := &recordingObserver{}
		client := NewInferenceClient(server.URL, "hf_test", 50*time.Millisecond, observer)

		_, err := client.ZeroShot(context.Background(), "text", []string{"left"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send request")
		assert.Equal(t, []string{OutcomeTransportError}, observer.outcomes)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(ZeroShotResponse{})
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "hf_test", 5*time.Second, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.ZeroShot(ctx, "text", []string{"left"})

		assert.Error(t, err)
	})
}
