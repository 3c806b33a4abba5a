package replicate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medblog/httpclient"
)

func testClient(baseURL string) *Client {
	return &Client{
		token:        "test-token",
		baseURL:      baseURL,
		http:         httpclient.NewDefault(),
		pollInterval: time.Millisecond,
		maxAttempts:  5,
	}
}

// predictionServer fakes the submit-then-poll API. pollStatuses is the
// sequence of statuses returned by successive polls.
func predictionServer(t *testing.T, pollStatuses []string, output []string) *httptest.Server {
	t.Helper()
	var polls atomic.Int32

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token test-token", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, modelVersion, payload["version"])

		json.NewEncoder(w).Encode(map[string]any{
			"status": "starting",
			"urls":   map[string]string{"get": srv.URL + "/poll"},
		})
	})
	mux.HandleFunc("GET /poll", func(w http.ResponseWriter, r *http.Request) {
		i := int(polls.Add(1)) - 1
		if i >= len(pollStatuses) {
			i = len(pollStatuses) - 1
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": pollStatuses[i],
			"output": output,
		})
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateIllustrationPollsToSuccess(t *testing.T) {
	srv := predictionServer(t,
		[]string{"starting", "processing", "succeeded"},
		[]string{"https://replicate.delivery/out.png"},
	)
	c := testClient(srv.URL)

	url, err := c.GenerateIllustration(context.Background(), "Heart Health")
	require.NoError(t, err)
	assert.Equal(t, "https://replicate.delivery/out.png", url)
}

func TestGenerateIllustrationFailedPrediction(t *testing.T) {
	srv := predictionServer(t, []string{"processing", "failed"}, nil)
	c := testClient(srv.URL)

	_, err := c.GenerateIllustration(context.Background(), "Heart Health")
	assert.ErrorIs(t, err, ErrPredictionFailed)
}

func TestGenerateIllustrationSucceededWithoutOutput(t *testing.T) {
	srv := predictionServer(t, []string{"succeeded"}, nil)
	c := testClient(srv.URL)

	_, err := c.GenerateIllustration(context.Background(), "Heart Health")
	assert.ErrorIs(t, err, ErrPredictionFailed)
}

func TestGenerateIllustrationMissingPollURLMeansNoImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "starting"})
	}))
	t.Cleanup(srv.Close)
	c := testClient(srv.URL)

	url, err := c.GenerateIllustration(context.Background(), "Heart Health")
	require.NoError(t, err)
	assert.Equal(t, "", url)
}

func TestGenerateIllustrationTimesOutAfterAttemptBudget(t *testing.T) {
	srv := predictionServer(t, []string{"processing"}, nil)
	c := testClient(srv.URL)

	_, err := c.GenerateIllustration(context.Background(), "Heart Health")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerateIllustrationHonorsContextCancel(t *testing.T) {
	srv := predictionServer(t, []string{"processing"}, nil)
	c := testClient(srv.URL)
	c.pollInterval = 50 * time.Millisecond
	c.maxAttempts = 1000

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.GenerateIllustration(ctx, "Heart Health")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestEnabled(t *testing.T) {
	assert.True(t, testClient("http://unused").Enabled())

	t.Setenv("REPLICATE_API_TOKEN", "")
	assert.False(t, NewClient().Enabled())
}
