// Package match scores private-chef candidates against a booking request,
// estimates what the booking will cost, and ranks the candidate pool into an
// explained shortlist.
//
// Every function here is pure: inputs are complete snapshots supplied by the
// caller and nothing is cached between calls, so the package is safe for
// concurrent use.
package match

import "time"

// Tier is the service level a candidate is listed under.
type Tier string

const (
	TierHome         Tier = "home"
	TierProfessional Tier = "professional"
	TierElite        Tier = "elite"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierHome, TierProfessional, TierElite:
		return true
	default:
		return false
	}
}

// Dish is one of a candidate's signature dishes.
type Dish struct {
	Name    string   `json:"name"`
	Dietary []string `json:"dietary"`
}

// Candidate is a service provider that can be booked for an event.
type Candidate struct {
	ID                string                `json:"id" validate:"required"`
	Name              string                `json:"name"`
	Tier              Tier                  `json:"tier" validate:"oneof=home professional elite"`
	Specialties       []string              `json:"specialties"`
	CulturalExpertise []string              `json:"culturalExpertise"`
	Rating            float64               `json:"rating" validate:"gte=0,lte=5"`
	YearsExperience   int                   `json:"yearsExperience" validate:"gte=0"`
	Availability      []string              `json:"availability"`
	Certifications    int                   `json:"certifications" validate:"gte=0"`
	SignatureDishes   []Dish                `json:"signatureDishes"`
	BasePrices        map[EventKind]float64 `json:"basePrices"`
	DynamicPricing    bool                  `json:"dynamicPricing"`
}

// RequestCriteria describes what the requester is looking for.
type RequestCriteria struct {
	BudgetMin float64   `json:"budgetMin" validate:"gte=0"`
	BudgetMax float64   `json:"budgetMax" validate:"gte=0,gtefield=BudgetMin"`
	Cuisines  []string  `json:"cuisines"`
	EventType string    `json:"eventType"`
	EventDate time.Time `json:"eventDate"`
	EventSize int       `json:"eventSize" validate:"gte=0"`
	TimeSlot  string    `json:"timeSlot"`
	Dietary   []string  `json:"dietary"`
}

// Breakdown holds each factor's 0-100 score together with the price the
// budget factor was computed from.
type Breakdown struct {
	Budget       float64 `json:"budget"`
	Cuisine      float64 `json:"cuisine"`
	Tier         float64 `json:"tier"`
	Availability float64 `json:"availability"`
	Dietary      float64 `json:"dietary"`
	Price        float64 `json:"price"`
	Total        float64 `json:"total"`
}

// MatchResult is one ranked, explained recommendation.
type MatchResult struct {
	Candidate      Candidate `json:"candidate"`
	Score          float64   `json:"matchScore"`
	Reasons        []string  `json:"reasons"`
	EstimatedPrice float64   `json:"estimatedPrice"`
	AvailableSlots []string  `json:"availableSlots"`
	Breakdown      Breakdown `json:"breakdown"`
}
