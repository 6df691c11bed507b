package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestExternalCandidateName(t *testing.T) {
	tests := []struct {
		name      string
		candidate ExternalCandidate
		expected  string
	}{
		{
			name:      "display name wins",
			candidate: ExternalCandidate{DisplayName: strPtr("Johnny D"), FirstName: strPtr("John"), LastName: strPtr("Doe")},
			expected:  "Johnny D",
		},
		{
			name:      "first and last",
			candidate: ExternalCandidate{FirstName: strPtr("John"), LastName: strPtr("Doe")},
			expected:  "John Doe",
		},
		{
			name:      "first only",
			candidate: ExternalCandidate{FirstName: strPtr("John")},
			expected:  "John",
		},
		{
			name:      "no name fields",
			candidate: ExternalCandidate{},
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.candidate.Name())
		})
	}
}
