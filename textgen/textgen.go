package textgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyCompletion is returned when the completion model responds without
// any usable text.
var ErrEmptyCompletion = errors.New("textgen: empty completion")

const (
	titleMaxTokens = 30
	bodyMaxTokens  = 1000

	samplingTemperature = 0.8
	samplingTopP        = 0.9
)

// Client wraps the remote completion model used for blog titles and bodies.
// It performs no retries; transient failures propagate to the caller.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Client for the given model using GEMINI_API_KEY.
func NewClient(ctx context.Context, model string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: client, model: model}, nil
}

// TitlePrompt builds the title generation prompt. The topic is embedded
// verbatim.
func TitlePrompt(topic string) string {
	return fmt.Sprintf("Generate a unique and informative title for a medical blog post about %s. Only return the title.", topic)
}

// BodyPrompt builds the article generation prompt around a title.
func BodyPrompt(title string) string {
	return fmt.Sprintf("Write a detailed and well-structured medical blog article titled %q. Include subheadings, bullet points, and a call to action at the end. Make it at least 500 words.", title)
}

// GenerateTitle produces a post title for a topic. Surrounding quote
// characters are stripped from the model output.
func (c *Client) GenerateTitle(ctx context.Context, topic string) (string, error) {
	out, err := c.complete(ctx, TitlePrompt(topic), titleMaxTokens)
	if err != nil {
		return "", err
	}
	title := StripQuotes(strings.TrimSpace(out))
	if title == "" {
		return "", ErrEmptyCompletion
	}
	return title, nil
}

// GenerateBody produces the article body for a title.
func (c *Client) GenerateBody(ctx context.Context, title string) (string, error) {
	out, err := c.complete(ctx, BodyPrompt(title), bodyMaxTokens)
	if err != nil {
		return "", err
	}
	content := strings.TrimSpace(out)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(samplingTemperature)),
			TopP:            genai.Ptr(float32(samplingTopP)),
			MaxOutputTokens: maxTokens,
		},
	)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// StripQuotes removes leading and trailing single or double quote
// characters from s.
func StripQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
