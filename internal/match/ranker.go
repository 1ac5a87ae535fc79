package match

import "sort"

const (
	// DefaultLimit is the shortlist size when the caller does not pick one.
	DefaultLimit = 5
	// MinScore is the cut-off: candidates scoring at or below it are dropped.
	MinScore = 30
)

// GenerateRecommendations scores the pool against r and returns the best
// matches, highest score first. Ties keep pool order. A limit of zero or less
// means DefaultLimit.
func GenerateRecommendations(pool []Candidate, r RequestCriteria, limit int) []MatchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]MatchResult, 0, len(pool))
	for _, c := range pool {
		res := Evaluate(c, r)
		if res.Score <= MinScore {
			continue
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Evaluate builds the full result for one candidate without applying the
// cut-off.
func Evaluate(c Candidate, r RequestCriteria) MatchResult {
	b := Explain(c, r)
	return MatchResult{
		Candidate:      c,
		Score:          b.Total,
		Reasons:        Reasons(c, r),
		EstimatedPrice: b.Price,
		AvailableSlots: AvailableSlots(c, r),
		Breakdown:      b,
	}
}
