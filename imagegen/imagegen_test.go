package imagegen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposePromptUsesFirstTwoContentLines(t *testing.T) {
	content := "Line one about the condition.\nLine two with detail.\nLine three must not appear."

	prompt := ComposePrompt("Understanding Migraines", content)

	assert.Contains(t, prompt, `"Understanding Migraines"`)
	assert.Contains(t, prompt, "Line one about the condition. Line two with detail.")
	assert.NotContains(t, prompt, "Line three")
}

func TestComposePromptTruncatesLongContext(t *testing.T) {
	content := strings.Repeat("а", 500)

	prompt := ComposePrompt("Title", content)

	assert.LessOrEqual(t, strings.Count(prompt, "а"), 300)
}

func TestGenerateReturnsImageBytes(t *testing.T) {
	imageBytes := []byte{0x89, 'P', 'N', 'G'}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "a prompt", payload["inputs"])

		w.Write(imageBytes)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Generate(context.Background(), "a prompt")
	require.NoError(t, err)
	assert.Equal(t, imageBytes, got)
}

func TestGenerateNon2xxIsSynthesisFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Generate(context.Background(), "a prompt")
	assert.ErrorIs(t, err, ErrSynthesisFailed)
}
