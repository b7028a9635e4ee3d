package match

import "sort"

// DefaultMinSimilarity is the lowest Similarity reported by Suggest.
const DefaultMinSimilarity = 0.6

// Suggestion is a property name close to an unknown column.
type Suggestion struct {
	Property string
	Score    float64
}

// Suggest ranks properties by similarity to column and returns at most limit
// entries scoring at least minScore, best first. Ties keep the input order.
func Suggest(column string, properties []string, minScore float64, limit int) []Suggestion {
	var out []Suggestion

	for _, p := range properties {
		score := Similarity(column, p)
		if score >= minScore {
			out = append(out, Suggestion{Property: p, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Names returns just the property names of suggestions.
func Names(s []Suggestion) []string {
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].Property
	}

	return names
}
