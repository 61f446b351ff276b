package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

// Suggest returns up to limit candidates closest to query, best first.
//
// A candidate is scored on its full name, and on its type part when query
// has no package qualifier. Ties keep the candidate order.
func Suggest(query string, candidates []string, limit int) []string {
	if limit <= 0 || query == "" {
		return nil
	}

	q := Normalize(query)
	qualified := TypePart(query) != query

	type scored struct {
		name  string
		score float64
	}

	var ranked []scored
	for _, c := range candidates {
		score := Similarity(q, Normalize(c))
		if !qualified {
			score = max(score, Similarity(q, Normalize(TypePart(c))))
		}

		if score >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}
