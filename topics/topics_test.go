package topics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCatalog = []string{
	"Cardiology",
	"Neurology",
	"Pediatrics",
	"Oncology",
}

func TestPickReturnsCatalogEntry(t *testing.T) {
	s := NewSelectorWithSource(testCatalog, rand.NewSource(1))

	for i := 0; i < 50; i++ {
		assert.Contains(t, testCatalog, s.Pick())
	}
}

func TestPickIsDeterministicForSeed(t *testing.T) {
	a := NewSelectorWithSource(testCatalog, rand.NewSource(42))
	b := NewSelectorWithSource(testCatalog, rand.NewSource(42))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pick(), b.Pick())
	}
}

func TestPickCoversCatalog(t *testing.T) {
	s := NewSelectorWithSource(testCatalog, rand.NewSource(7))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[s.Pick()] = true
	}
	assert.Len(t, seen, len(testCatalog))
}

func TestPickEmptyCatalog(t *testing.T) {
	s := NewSelector(nil)
	assert.Equal(t, "", s.Pick())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cardiology", Normalize("  Cardiology "))
	assert.Equal(t, "mental health", Normalize("Mental Health"))
	assert.Equal(t, "", Normalize("   "))
}
