package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/pantry/internal/match"
)

func resultIDs(results []match.MatchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Candidate.ID)
	}
	return out
}

func TestGenerateRecommendations_EmptyPool(t *testing.T) {
	got := match.GenerateRecommendations(nil, match.RequestCriteria{BudgetMax: 100}, 5)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerateRecommendations_OrderAndTies(t *testing.T) {
	r := match.RequestCriteria{BudgetMin: 80, BudgetMax: 120}
	pool := []match.Candidate{
		flatPriced("over", match.TierHome, 200),
		flatPriced("tie-1", match.TierHome, 100),
		flatPriced("cheap", match.TierHome, 10),
		flatPriced("tie-2", match.TierHome, 100),
	}

	got := match.GenerateRecommendations(pool, r, 10)
	assert.Equal(t, []string{"tie-1", "tie-2", "cheap", "over"}, resultIDs(got))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
	for _, res := range got {
		assert.Equal(t, res.Breakdown.Total, res.Score)
		assert.Equal(t, res.Breakdown.Price, res.EstimatedPrice)
	}
}

func TestGenerateRecommendations_DropsLowScores(t *testing.T) {
	r := match.RequestCriteria{
		BudgetMin: 80,
		BudgetMax: 120,
		Cuisines:  []string{"sushi"},
		Dietary:   []string{"kosher"},
		EventType: "wedding",
	}
	// over budget, no cuisine, wrong tier, unavailable, no diet:
	// 0 + 0 + 8 + 9 + 2 = 19
	weak := flatPriced("weak", match.TierHome, 500)
	strong := flatPriced("strong", match.TierElite, 100)

	got := match.GenerateRecommendations([]match.Candidate{weak, strong}, r, 5)
	assert.Equal(t, []string{"strong"}, resultIDs(got))
	for _, res := range got {
		assert.Greater(t, res.Score, float64(match.MinScore))
	}
}

func TestGenerateRecommendations_Limit(t *testing.T) {
	var pool []match.Candidate
	for i := 0; i < 8; i++ {
		pool = append(pool, flatPriced(fmt.Sprintf("c%d", i), match.TierHome, 100))
	}
	r := match.RequestCriteria{BudgetMin: 80, BudgetMax: 120}

	assert.Len(t, match.GenerateRecommendations(pool, r, 3), 3)
	assert.Len(t, match.GenerateRecommendations(pool, r, 0), match.DefaultLimit)
	assert.Len(t, match.GenerateRecommendations(pool, r, -1), match.DefaultLimit)
	assert.Len(t, match.GenerateRecommendations(pool[:2], r, 5), 2)
}

func TestGenerateRecommendations_ReasonsAndSlots(t *testing.T) {
	c := flatPriced("star", match.TierElite, 100)
	c.Specialties = []string{"Modern Italian"}
	c.Rating = 4.9
	c.YearsExperience = 15
	c.Certifications = 2
	c.Availability = []string{"weekend evenings", "saturday morning"}

	r := match.RequestCriteria{
		BudgetMin: 50,
		BudgetMax: 150,
		Cuisines:  []string{"italian"},
		EventType: "luxury dinner",
		EventDate: saturday,
		TimeSlot:  "evening",
	}
	got := match.GenerateRecommendations([]match.Candidate{c}, r, 5)
	require.Len(t, got, 1)

	assert.Equal(t, []string{
		"Specializes in Modern Italian cuisine",
		"Elite chef, a perfect fit for luxury events",
		"Top rated at 4.9 stars",
	}, got[0].Reasons)
	assert.Equal(t, []string{"morning", "evening"}, got[0].AvailableSlots)
}

func TestEvaluate_KeepsLowScores(t *testing.T) {
	c := flatPriced("pricey", match.TierHome, 500)
	r := match.RequestCriteria{
		BudgetMin: 50,
		BudgetMax: 100,
		EventType: "wedding",
		Cuisines:  []string{"thai"},
		Dietary:   []string{"vegan"},
	}

	res := match.Evaluate(c, r)
	assert.Equal(t, match.ScoreCandidate(c, r), res.Score)
	assert.Equal(t, res.Breakdown.Total, res.Score)
	assert.InDelta(t, 19.0, res.Score, 1e-9)
	assert.Equal(t, 500.0, res.EstimatedPrice)
	assert.Empty(t, match.GenerateRecommendations([]match.Candidate{c}, r, 5))
}

func TestReasons_CascadeOrder(t *testing.T) {
	c := flatPriced("vet", match.TierHome, 100)
	c.YearsExperience = 12
	c.Certifications = 1

	got := match.Reasons(c, match.RequestCriteria{EventType: "corporate"})
	assert.Equal(t, []string{
		"12 years of professional experience",
		"Holds a verified certification",
	}, got)

	assert.Empty(t, match.Reasons(flatPriced("new", match.TierHome, 100), match.RequestCriteria{}))
}

func TestAvailableSlots(t *testing.T) {
	c := match.Candidate{Availability: []string{"weekday lunch", "fri-evening", "anytime"}}
	assert.Equal(t, []string{"morning", "afternoon", "evening"}, match.AvailableSlots(c, match.RequestCriteria{EventDate: saturday}))

	c.Availability = []string{"weekday lunch", "wednesday dinner", "weekend brunch"}
	assert.Equal(t, []string{"afternoon", "evening"}, match.AvailableSlots(c, match.RequestCriteria{EventDate: wednesday}))
	assert.Empty(t, match.AvailableSlots(c, match.RequestCriteria{}))
}
