package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatch(t *testing.T) {
	cases := []struct {
		a, b     string
		expected bool
	}{
		{"Paris", "Paris", true},
		{"paris", "PARIS", true},
		{"Paris", "Paris, France", true},
		{"Paris, France", "Paris", true},
		{"  da  lat ", "Da Lat", true},
		{"ha long bay", "Bay of Ha Long", true},
		{"Paris", "Tokyo", false},
		{"", "Paris", false},
		{"Paris", "", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FuzzyMatch(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestFuzzyMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Paris", "Paris, France"},
		{"hiking", "mountain hiking trails"},
		{"Nice", "Venice"}, // substring of a different place still matches either way
	}
	for _, p := range pairs {
		assert.Equal(t, FuzzyMatch(p[0], p[1]), FuzzyMatch(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestMatchesAny(t *testing.T) {
	haystack := []string{"Louvre", "Seine cruise", "wine tasting"}

	assert.True(t, MatchesAny("wine", haystack))
	assert.True(t, MatchesAny("SEINE CRUISE", haystack))
	assert.False(t, MatchesAny("surfing", haystack))
	assert.False(t, MatchesAny("anything", nil))
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "da lat", NormalizeText("  Da   Lat "))
	assert.Equal(t, "", NormalizeText("   "))
}
