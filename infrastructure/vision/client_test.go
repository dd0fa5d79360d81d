package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-gallery/pkg/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.VisionConfig{
		BaseURL: url,
		APIKey:  "test-key",
		Model:   "google/gemini-2.5-flash",
	})
}

func TestClientConfigured(t *testing.T) {
	assert.True(t, newTestClient("https://example.com").Configured())
	assert.False(t, NewClient(config.VisionConfig{BaseURL: "https://example.com"}).Configured())
	assert.False(t, NewClient(config.VisionConfig{APIKey: "k"}).Configured())
}

func TestMatchBatchSendsCompletionRequest(t *testing.T) {
	var captured chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"matchedIds": ["photo-1"]}`}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	raw, err := client.MatchBatch(context.Background(), &MatchRequest{
		Query:  "red shirt",
		Photos: []PhotoRef{{ID: "photo-1", URL: "https://cdn.example.com/1.jpg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"matchedIds": ["photo-1"]}`, raw)

	assert.Equal(t, "google/gemini-2.5-flash", captured.Model)
	assert.Equal(t, 500, captured.MaxTokens)
	assert.InDelta(t, 0.1, captured.Temperature, 1e-9)
	assert.NotEmpty(t, captured.Messages)
}

func TestMatchBatchGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.MatchBatch(context.Background(), &MatchRequest{Query: "x"})
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusTooManyRequests, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "rate limited")
}

func TestMatchBatchNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.MatchBatch(context.Background(), &MatchRequest{Query: "x"})
	assert.Error(t, err)
}
