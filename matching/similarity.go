package matching

import "strings"

// DefaultNameSimilarityThreshold is the score below which two display names are
// treated as likely referring to different people.
const DefaultNameSimilarityThreshold = 0.5

// NameSimilarity computes a token-overlap score between two display names in [0, 1].
// Names are lowercased and split on whitespace into token sets; the score is the
// intersection size divided by the larger set size. Identical names (after
// lowercasing) score 1 regardless of tokenization, and a name with no tokens
// scores 0 against anything.
func NameSimilarity(a, b string) float64 {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)

	tokensA := tokenSet(la)
	tokensB := tokenSet(lb)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	if la == lb {
		return 1
	}

	var overlap int
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			overlap++
		}
	}

	larger := len(tokensA)
	if len(tokensB) > larger {
		larger = len(tokensB)
	}

	return float64(overlap) / float64(larger)
}

// AreSimilar reports whether two display names score at or above the threshold.
func AreSimilar(a, b string, threshold float64) bool {
	return NameSimilarity(a, b) >= threshold
}

func tokenSet(name string) map[string]struct{} {
	fields := strings.Fields(name)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
