package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"medblog/httpclient"
	"medblog/logger"
)

const (
	predictionsURL = "https://api.replicate.com/v1/predictions"

	// modelVersion is the image model used for user-authored posts that
	// arrive without an uploaded file.
	modelVersion = "db21e45a3b471f5de8b7210b81d0d5c73124a0c2c55b1bf26a293af5b0c44dc2"

	defaultPollInterval = 2 * time.Second
	defaultMaxAttempts  = 60
)

var (
	// ErrTimeout is returned when a prediction does not settle within the
	// attempt budget or the context deadline.
	ErrTimeout = errors.New("replicate: prediction timed out")

	// ErrPredictionFailed is returned when the remote reports the
	// prediction as failed.
	ErrPredictionFailed = errors.New("replicate: prediction failed")
)

// Client submits asynchronous image predictions and polls them to
// completion. Polling is bounded by both a max attempt count and the
// caller's context.
type Client struct {
	token        string
	baseURL      string
	http         *http.Client
	pollInterval time.Duration
	maxAttempts  int
}

// NewClient builds a Client using REPLICATE_API_TOKEN.
func NewClient() *Client {
	return &Client{
		token:        os.Getenv("REPLICATE_API_TOKEN"),
		baseURL:      predictionsURL,
		http:         httpclient.NewDefault(),
		pollInterval: defaultPollInterval,
		maxAttempts:  defaultMaxAttempts,
	}
}

// Enabled reports whether a token is configured. Without one the
// user-authored path simply stores no image.
func (c *Client) Enabled() bool {
	return c.token != ""
}

type prediction struct {
	Status string   `json:"status"`
	Output []string `json:"output"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
	Error any `json:"error"`
}

// GenerateIllustration submits a prediction for the given post title and
// polls until it settles, returning the output image URL.
func (c *Client) GenerateIllustration(ctx context.Context, title string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"version": modelVersion,
		"input":   map[string]string{"prompt": fmt.Sprintf("Illustration for: %s", title)},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var created prediction
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	if created.URLs.Get == "" {
		// nothing to poll; the post goes through without an image
		logger.WarnWithFields("prediction submit returned no polling URL", logger.Fields{
			"status": resp.Status,
		})
		return "", nil
	}

	return c.poll(ctx, created.URLs.Get)
}

func (c *Client) poll(ctx context.Context, pollURL string) (string, error) {
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		case <-time.After(c.pollInterval):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pollURL, nil)
		if err != nil {
			return "", err
		}
		req.Header.Set("Authorization", "Token "+c.token)

		resp, err := c.http.Do(req)
		if err != nil {
			return "", err
		}
		var p prediction
		decErr := json.NewDecoder(resp.Body).Decode(&p)
		resp.Body.Close()
		if decErr != nil {
			return "", decErr
		}

		switch p.Status {
		case "succeeded":
			if len(p.Output) == 0 {
				return "", fmt.Errorf("%w: succeeded with empty output", ErrPredictionFailed)
			}
			return p.Output[0], nil
		case "failed", "canceled":
			return "", fmt.Errorf("%w: status %s (%v)", ErrPredictionFailed, p.Status, p.Error)
		}
	}
	return "", fmt.Errorf("%w: no result after %d attempts", ErrTimeout, c.maxAttempts)
}
