package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"medblog/httpclient"
)

// ErrSynthesisFailed wraps any non-success response from the image model.
var ErrSynthesisFailed = errors.New("imagegen: synthesis failed")

// contextExcerptMax bounds how much of the article body leaks into the
// image prompt.
const contextExcerptMax = 300

// Client wraps a synchronous image synthesis endpoint. One POST per image,
// raw bytes back, no retries and no polling.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewClient builds a Client for the given inference endpoint using
// HF_API_TOKEN.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    os.Getenv("HF_API_TOKEN"),
		// image synthesis regularly takes longer than the shared default
		http: httpclient.New(httpclient.Config{Timeout: 120 * time.Second}),
	}
}

// ComposePrompt builds the synthesis prompt from the post title and the
// first two lines of its body, truncated.
func ComposePrompt(title, content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 2 {
		lines = lines[:2]
	}
	intro := strings.Join(lines, " ")
	if rs := []rune(intro); len(rs) > contextExcerptMax {
		intro = string(rs[:contextExcerptMax])
	}
	return fmt.Sprintf("Professional medical illustration, hyper realistic, high detail, for a blog titled: %q. Context: %s", title, intro)
}

// Generate runs one synthesis call and returns the raw image bytes.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrSynthesisFailed, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrSynthesisFailed)
	}
	return data, nil
}
