package match_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/pantry/internal/match"
)

func pricedChef(tier match.Tier, dynamic bool) match.Candidate {
	return match.Candidate{
		ID:   "p",
		Tier: tier,
		BasePrices: map[match.EventKind]float64{
			match.EventFamily:  100,
			match.EventWedding: 400,
		},
		DynamicPricing: dynamic,
	}
}

func TestEstimatePrice_StaticIgnoresSurcharges(t *testing.T) {
	c := pricedChef(match.TierElite, false)
	r := match.RequestCriteria{EventType: "family", EventDate: saturday, EventSize: 25}
	assert.Equal(t, 100.0, match.EstimatePrice(c, r))
}

func TestEstimatePrice_EventTypeLookup(t *testing.T) {
	c := pricedChef(match.TierHome, false)

	assert.Equal(t, 400.0, match.EstimatePrice(c, match.RequestCriteria{EventType: "Wedding reception"}))
	// unlisted kind and unrecognised text both use the family price
	assert.Equal(t, 100.0, match.EstimatePrice(c, match.RequestCriteria{EventType: "corporate"}))
	assert.Equal(t, 100.0, match.EstimatePrice(c, match.RequestCriteria{EventType: "mystery"}))
}

func TestEstimatePrice_Surcharges(t *testing.T) {
	tests := []struct {
		name string
		tier match.Tier
		r    match.RequestCriteria
		want float64
	}{
		{"weekday small home", match.TierHome, match.RequestCriteria{EventDate: wednesday, EventSize: 4}, 100},
		{"weekend", match.TierHome, match.RequestCriteria{EventDate: saturday, EventSize: 4}, 120},
		{"size eleven", match.TierHome, match.RequestCriteria{EventDate: wednesday, EventSize: 11}, 110},
		{"size ten", match.TierHome, match.RequestCriteria{EventDate: wednesday, EventSize: 10}, 100},
		{"size twenty one", match.TierHome, match.RequestCriteria{EventDate: wednesday, EventSize: 21}, 132},
		{"professional", match.TierProfessional, match.RequestCriteria{EventDate: wednesday}, 120},
		{"elite weekend twenty five", match.TierElite, match.RequestCriteria{EventType: "family", EventDate: saturday, EventSize: 25}, 237.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := match.EstimatePrice(pricedChef(tt.tier, true), tt.r)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCandidateJSON_PriceTableKeys(t *testing.T) {
	var c match.Candidate
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "c1",
		"tier": "elite",
		"basePrices": {"family": 150, "Wedding": 900, "gala": 1200}
	}`), &c))

	assert.Equal(t, 150.0, c.BasePrices[match.EventFamily])
	assert.Equal(t, 900.0, c.BasePrices[match.EventWedding])
	assert.Equal(t, 1200.0, c.BasePrices[match.EventLuxury])

	out, err := json.Marshal(map[match.EventKind]float64{match.EventCorporate: 300})
	require.NoError(t, err)
	assert.JSONEq(t, `{"corporate": 300}`, string(out))
}
