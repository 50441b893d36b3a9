package matching

import (
	"math"
	"strings"
)

// normalizeTerm lowercases and trims a free-text term for set comparison.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSet converts a slice of free-text terms into a case-insensitive
// set. Empty terms and duplicates collapse away.
func normalizeSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if n := normalizeTerm(item); n != "" {
			set[n] = true
		}
	}
	return set
}

// JaccardSimilarity returns |intersection| / |union| over the case-insensitive
// sets of a and b. An empty union yields 0, not 1: two profiles with no data
// in a field should not score as identical.
func JaccardSimilarity(a, b []string) float64 {
	setA := normalizeSet(a)
	setB := normalizeSet(b)

	intersection := 0
	for item := range setA {
		if setB[item] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// CosineSimilarity returns the cosine of the angle between a and b. Vectors
// of different lengths are treated as incomparable and yield 0, as does a
// zero-norm vector on either side.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
