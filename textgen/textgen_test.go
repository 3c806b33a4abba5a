package textgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitlePromptEmbedsTopicVerbatim(t *testing.T) {
	prompt := TitlePrompt("Mental Health")

	assert.Contains(t, prompt, "about Mental Health.")
	assert.Contains(t, prompt, "Only return the title.")
}

func TestBodyPromptQuotesTitle(t *testing.T) {
	prompt := BodyPrompt(`Sleep and the "Modern" Brain`)

	assert.Contains(t, prompt, `"Sleep and the \"Modern\" Brain"`)
	assert.Contains(t, prompt, "at least 500 words")
	assert.Contains(t, prompt, "call to action")
}

func TestStripQuotes(t *testing.T) {
	cases := map[string]string{
		`"Quoted Title"`:   "Quoted Title",
		`'Single Quoted'`:  "Single Quoted",
		`No Quotes Here`:   "No Quotes Here",
		`""`:               "",
		`"Nested 'Inner'"`: "Nested 'Inner",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripQuotes(in))
	}
}

func TestStripQuotesKeepsInnerQuotes(t *testing.T) {
	got := StripQuotes(`"The "Silent" Epidemic"`)
	assert.False(t, strings.HasPrefix(got, `"`))
	assert.False(t, strings.HasSuffix(got, `"`))
	assert.Contains(t, got, `"Silent"`)
}
