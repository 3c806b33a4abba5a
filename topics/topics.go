package topics

import (
	"math/rand"
	"strings"
	"time"
)

// Selector picks blog topics uniformly at random from a fixed catalog.
// The random source is injectable so tests can seed it deterministically.
type Selector struct {
	catalog []string
	rng     *rand.Rand
}

// NewSelector builds a Selector over the given catalog with a time-seeded
// source.
func NewSelector(catalog []string) *Selector {
	return NewSelectorWithSource(catalog, rand.NewSource(time.Now().UnixNano()))
}

// NewSelectorWithSource builds a Selector over the given catalog using the
// provided random source.
func NewSelectorWithSource(catalog []string, src rand.Source) *Selector {
	return &Selector{
		catalog: catalog,
		rng:     rand.New(src),
	}
}

// Pick returns one topic chosen with uniform probability. An empty catalog
// yields "".
func (s *Selector) Pick() string {
	if len(s.catalog) == 0 {
		return ""
	}
	return s.catalog[s.rng.Intn(len(s.catalog))]
}

// Normalize returns the canonical stored form of a topic: trimmed and
// lowercased.
func Normalize(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}
