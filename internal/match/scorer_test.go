package match_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tayloree/pantry/internal/match"
)

// 2026-06-13 is a Saturday, 2026-06-10 a Wednesday.
var (
	saturday  = time.Date(2026, 6, 13, 18, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 6, 10, 18, 0, 0, 0, time.UTC)
)

func flatPriced(id string, tier match.Tier, price float64) match.Candidate {
	return match.Candidate{
		ID:         id,
		Name:       "Chef " + id,
		Tier:       tier,
		BasePrices: map[match.EventKind]float64{match.EventFamily: price},
	}
}

func TestScoreCandidate_BudgetDecides(t *testing.T) {
	criteria := match.RequestCriteria{BudgetMin: 80, BudgetMax: 120}
	a := flatPriced("a", match.TierHome, 100)
	b := flatPriced("b", match.TierHome, 200)

	ea := match.Explain(a, criteria)
	eb := match.Explain(b, criteria)

	assert.Equal(t, 100.0, ea.Budget)
	assert.Equal(t, 0.0, eb.Budget)
	assert.Greater(t, match.ScoreCandidate(a, criteria), match.ScoreCandidate(b, criteria))
}

func TestExplain_BudgetEdges(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		min   float64
		max   float64
		want  float64
	}{
		{"midpoint", 100, 80, 120, 100},
		{"edge", 120, 80, 120, 50},
		{"below range", 50, 80, 120, 60},
		{"above range", 121, 80, 120, 0},
		{"zero width inside", 100, 100, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := flatPriced("x", match.TierHome, tt.price)
			got := match.Explain(c, match.RequestCriteria{BudgetMin: tt.min, BudgetMax: tt.max})
			assert.InDelta(t, tt.want, got.Budget, 1e-9)
		})
	}
}

func TestExplain_TierTable(t *testing.T) {
	tests := []struct {
		tier      match.Tier
		eventType string
		want      float64
	}{
		{match.TierElite, "luxury", 100},
		{match.TierElite, "family", 40},
		{match.TierHome, "Family reunion", 100},
		{match.TierProfessional, "family", 80},
		{match.TierProfessional, "corporate offsite", 100},
		{match.TierElite, "wedding reception", 100},
		{match.TierHome, "wedding", 40},
		{match.TierElite, "retirement thing", 40},
		{match.TierHome, "", 40},
	}
	for _, tt := range tests {
		c := flatPriced("x", tt.tier, 100)
		got := match.Explain(c, match.RequestCriteria{BudgetMax: 1000, EventType: tt.eventType})
		assert.Equal(t, tt.want, got.Tier, "%s for %q", tt.tier, tt.eventType)
	}
}

func TestExplain_CuisineAndDietary(t *testing.T) {
	c := flatPriced("x", match.TierHome, 100)
	c.Specialties = []string{"Northern Italian"}
	c.CulturalExpertise = []string{"Japanese home cooking"}
	c.SignatureDishes = []match.Dish{
		{Name: "Risotto", Dietary: []string{"Vegetarian", "gluten-free"}},
		{Name: "Ramen", Dietary: []string{"dairy-free"}},
	}

	none := match.Explain(c, match.RequestCriteria{BudgetMax: 1000})
	assert.Equal(t, 100.0, none.Cuisine)
	assert.Equal(t, 100.0, none.Dietary)

	got := match.Explain(c, match.RequestCriteria{
		BudgetMax: 1000,
		Cuisines:  []string{"italian", "JAPANESE", "mexican", "thai"},
		Dietary:   []string{"vegan", "gluten-free"},
	})
	assert.InDelta(t, 50, got.Cuisine, 1e-9)
	// half matched: 50 plus the flat 20
	assert.InDelta(t, 70, got.Dietary, 1e-9)

	all := match.Explain(c, match.RequestCriteria{BudgetMax: 1000, Dietary: []string{"vegetarian"}})
	assert.Equal(t, 100.0, all.Dietary)

	nothing := match.Explain(c, match.RequestCriteria{BudgetMax: 1000, Dietary: []string{"halal"}})
	assert.Equal(t, 20.0, nothing.Dietary)
}

func TestExplain_Availability(t *testing.T) {
	c := flatPriced("x", match.TierHome, 100)
	c.Availability = []string{"weekend-evenings", "wed:lunch"}

	tests := []struct {
		date time.Time
		slot string
		want float64
	}{
		{saturday, "evening", 100},
		{saturday, "Dinner", 100},
		{saturday, "morning", 60},
		{wednesday, "lunch", 100},
		{wednesday, "evening", 60},
		{time.Time{}, "evening", 60},
	}
	for _, tt := range tests {
		got := match.Explain(c, match.RequestCriteria{BudgetMax: 1000, EventDate: tt.date, TimeSlot: tt.slot})
		assert.Equal(t, tt.want, got.Availability, "%s %s", tt.date.Weekday(), tt.slot)
	}

	flexible := flatPriced("y", match.TierHome, 100)
	flexible.Availability = []string{"Flexible"}
	got := match.Explain(flexible, match.RequestCriteria{BudgetMax: 1000})
	assert.Equal(t, 100.0, got.Availability)
}

func TestScoreCandidate_EqualsWeightedBreakdown(t *testing.T) {
	c := flatPriced("x", match.TierProfessional, 150)
	c.Specialties = []string{"French"}
	c.Availability = []string{"weekday evenings"}
	r := match.RequestCriteria{
		BudgetMin: 100,
		BudgetMax: 200,
		Cuisines:  []string{"french", "korean"},
		EventType: "corporate",
		EventDate: wednesday,
		TimeSlot:  "evening",
	}

	b := match.Explain(c, r)
	want := b.Budget*0.30 + b.Cuisine*0.25 + b.Tier*0.20 + b.Availability*0.15 + b.Dietary*0.10
	assert.InDelta(t, want, b.Total, 1e-9)
	assert.Equal(t, b.Total, match.ScoreCandidate(c, r))
}

func TestScoreCandidate_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tiers := []match.Tier{match.TierHome, match.TierProfessional, match.TierElite, "unknown"}
	events := []string{"", "wedding", "luxury gala", "family", "kids party", "office", "zzz"}

	for i := 0; i < 300; i++ {
		c := match.Candidate{
			ID:             "c",
			Tier:           tiers[rng.Intn(len(tiers))],
			Rating:         rng.Float64() * 5,
			BasePrices:     map[match.EventKind]float64{match.EventFamily: rng.Float64() * 2000},
			DynamicPricing: rng.Intn(2) == 0,
			Specialties:    []string{"thai", "bbq"}[:rng.Intn(3)],
		}
		lo := rng.Float64() * 1000
		r := match.RequestCriteria{
			BudgetMin: lo,
			BudgetMax: lo + rng.Float64()*1000,
			EventType: events[rng.Intn(len(events))],
			EventSize: rng.Intn(40),
			EventDate: saturday.AddDate(0, 0, rng.Intn(7)),
			Cuisines:  []string{"thai", "sushi"}[:rng.Intn(3)],
			Dietary:   []string{"vegan"}[:rng.Intn(2)],
		}
		score := match.ScoreCandidate(c, r)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestParseEventKind(t *testing.T) {
	tests := map[string]match.EventKind{
		"":                 match.EventOther,
		"Wedding":          match.EventWedding,
		"wedding party":    match.EventWedding,
		"corporate dinner": match.EventCorporate,
		"Black Tie Gala":   match.EventLuxury,
		"family dinner":    match.EventFamily,
		"kids birthday":    match.EventFamily,
		"birthday":         match.EventCasual,
		"casual":           match.EventCasual,
		"bar mitzvah":      match.EventOther,
	}
	for input, want := range tests {
		assert.Equal(t, want, match.ParseEventKind(input), "ParseEventKind(%q)", input)
	}
}
