package matching

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FuzzyConfig defines weights and thresholds for fuzzy matching.
type FuzzyConfig struct {
	// MinSimilarityThreshold is the minimum name similarity for corpus queries.
	// Lower values cast a wider net for potential matches.
	MinSimilarityThreshold float64 `validate:"gte=0,lte=1"`
	// ConfidenceThreshold is the minimum weighted score to suggest a match.
	ConfidenceThreshold float64 `validate:"gte=0,lte=1"`
	// NameWeight and MethodWeight split the final score between name similarity
	// and contact method overlap. They must sum to 1.
	NameWeight   float64 `validate:"gte=0,lte=1"`
	MethodWeight float64 `validate:"gte=0,lte=1"`
}

// ImportConfig defines fuzzy matching behavior for import candidates.
var ImportConfig = FuzzyConfig{
	MinSimilarityThreshold: 0.3,
	ConfidenceThreshold:    0.5,
	NameWeight:             0.6,
	MethodWeight:           0.4,
}

// Score calculates a weighted confidence score for a match. Method overlap is
// ignored when the contact has no countable methods.
func (c FuzzyConfig) Score(nameSimilarity float64, methodMatches, totalMethods int) float64 {
	score := nameSimilarity * c.NameWeight
	if totalMethods > 0 {
		methodScore := float64(methodMatches) / float64(totalMethods)
		score += methodScore * c.MethodWeight
	}
	return score
}

// Validate checks the configuration for out-of-range weights and thresholds.
func (c FuzzyConfig) Validate() error {
	return validate.Struct(c)
}
