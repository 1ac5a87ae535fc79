package match

import (
	"math"
	"strings"
)

type factor int

const (
	factorBudget factor = iota
	factorCuisine
	factorTier
	factorAvailability
	factorDietary
)

// factorWeights sum to 1.
var factorWeights = map[factor]float64{
	factorBudget:       0.30,
	factorCuisine:      0.25,
	factorTier:         0.20,
	factorAvailability: 0.15,
	factorDietary:      0.10,
}

const (
	belowBudgetScore   = 60
	idealTierScore     = 100
	acceptedTierScore  = 80
	tierFloorScore     = 40
	availableScore     = 100
	unavailableScore   = 60
	dietaryBaseline    = 20
	unconstrainedScore = 100
)

// ScoreCandidate rates how well c fits r on a 0-100 scale.
func ScoreCandidate(c Candidate, r RequestCriteria) float64 {
	return Explain(c, r).Total
}

// Explain computes every factor behind ScoreCandidate.
func Explain(c Candidate, r RequestCriteria) Breakdown {
	price := EstimatePrice(c, r)
	b := Breakdown{
		Budget:       budgetScore(price, r.BudgetMin, r.BudgetMax),
		Cuisine:      cuisineScore(c, r.Cuisines),
		Tier:         tierScore(c.Tier, ParseEventKind(r.EventType)),
		Availability: availabilityScore(c, r),
		Dietary:      dietaryScore(c, r.Dietary),
		Price:        price,
	}

	total := b.Budget*factorWeights[factorBudget] +
		b.Cuisine*factorWeights[factorCuisine] +
		b.Tier*factorWeights[factorTier] +
		b.Availability*factorWeights[factorAvailability] +
		b.Dietary*factorWeights[factorDietary]
	b.Total = clampScore(total)
	return b
}

// budgetScore treats a price under budget as suspicious but acceptable and a
// price over budget as disqualifying. Inside the range it is 100 at the
// midpoint and falls off linearly with distance from it.
func budgetScore(price, lo, hi float64) float64 {
	if price < lo {
		return belowBudgetScore
	}
	if price > hi {
		return 0
	}
	width := hi - lo
	if width <= 0 {
		return 100
	}
	mid := (lo + hi) / 2
	return clampScore(100 - math.Abs(price-mid)/width*100)
}

func cuisineScore(c Candidate, requested []string) float64 {
	wanted := nonEmptyLower(requested)
	if len(wanted) == 0 {
		return unconstrainedScore
	}
	tags := make([]string, 0, len(c.Specialties)+len(c.CulturalExpertise))
	tags = append(tags, nonEmptyLower(c.Specialties)...)
	tags = append(tags, nonEmptyLower(c.CulturalExpertise)...)

	matched := 0
	for _, w := range wanted {
		if anyContains(tags, w) {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted)) * 100
}

func tierScore(tier Tier, kind EventKind) float64 {
	rule, ok := tierRules[kind]
	if !ok {
		return tierFloorScore
	}
	switch {
	case rule.ideal == tier:
		return idealTierScore
	case rule.acceptable[tier]:
		return acceptedTierScore
	default:
		return tierFloorScore
	}
}

func availabilityScore(c Candidate, r RequestCriteria) float64 {
	if matchesAvailability(c.Availability, r) {
		return availableScore
	}
	return unavailableScore
}

func dietaryScore(c Candidate, requested []string) float64 {
	wanted := nonEmptyLower(requested)
	if len(wanted) == 0 {
		return unconstrainedScore
	}
	var tags []string
	for _, dish := range c.SignatureDishes {
		tags = append(tags, nonEmptyLower(dish.Dietary)...)
	}

	matched := 0
	for _, w := range wanted {
		if anyContains(tags, w) {
			matched++
		}
	}
	return math.Min(100, float64(matched)/float64(len(wanted))*100+dietaryBaseline)
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

func nonEmptyLower(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// anyContains reports whether any tag contains needle. Both sides are
// expected in lower case already.
func anyContains(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, needle) {
			return true
		}
	}
	return false
}
