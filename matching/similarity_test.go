package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "John Doe", "John Doe", 1},
		{"identical after lowercasing", "JOHN DOE", "john doe", 1},
		{"middle name", "John Doe", "John Michael Doe", 2.0 / 3.0},
		{"no overlap", "John Doe", "Jane Smith", 0},
		{"partial overlap", "John Doe", "John Smith", 0.5},
		{"both empty", "", "", 0},
		{"one empty", "John Doe", "", 0},
		{"whitespace only", "   ", "John Doe", 0},
		{"duplicate tokens collapse", "John John Doe", "John Doe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NameSimilarity(tt.a, tt.b), 0.0001)
		})
	}
}

func TestNameSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"John Doe", "John Michael Doe"},
		{"Jane Smith", "John Doe"},
		{"Ana María López", "Ana López"},
	}
	for _, p := range pairs {
		assert.InDelta(t, NameSimilarity(p[0], p[1]), NameSimilarity(p[1], p[0]), 0.0001)
	}
}

func TestAreSimilar(t *testing.T) {
	assert.True(t, AreSimilar("John Doe", "John Michael Doe", DefaultNameSimilarityThreshold))
	assert.False(t, AreSimilar("John Doe", "Jane Smith", DefaultNameSimilarityThreshold))

	// threshold is caller-overridable
	assert.True(t, AreSimilar("John Doe", "John Smith", 0.5))
	assert.False(t, AreSimilar("John Doe", "John Smith", 0.75))
}
