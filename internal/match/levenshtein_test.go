package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"plural", "plural", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"plural", "plurl", 1},
		{"title case", "title  case", 1},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("plural", "plural"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
}

func TestClosest(t *testing.T) {
	keys := []string{"base", "plural", "lower"}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"plurl", "plural", true},
		{"Plural", "plural", true},
		{"bse", "base", true},
		{"lowr", "lower", true},
		{"plural", "", false},
		{"zzzzzzzz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.name, keys)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Closest("anything", nil)
	assert.False(t, ok)
}

func TestClosest_TieKeepsFirst(t *testing.T) {
	got, ok := Closest("ab", []string{"ax", "xb"})
	assert.True(t, ok)
	assert.Equal(t, "ax", got)
}

func TestHint(t *testing.T) {
	assert.Equal(t, `; did you mean "plural"?`, Hint("plurl", []string{"base", "plural"}))
	assert.Empty(t, Hint("unrelated", []string{"base"}))
}
