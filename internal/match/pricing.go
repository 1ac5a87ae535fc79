package match

import "time"

const (
	groupSize      = 10
	largeGroupSize = 20

	weekendSurcharge    = 1.2
	groupSurcharge      = 1.1
	largeGroupSurcharge = 1.2
)

var tierSurcharge = map[Tier]float64{
	TierProfessional: 1.2,
	TierElite:        1.5,
}

// EstimatePrice quotes what the candidate would charge for the request.
//
// The base comes from the candidate's price table entry for the request's
// event kind, or the family entry when that kind is unlisted. Candidates with
// dynamic pricing then stack the weekend, group-size and tier surcharges.
func EstimatePrice(c Candidate, r RequestCriteria) float64 {
	price := basePrice(c, ParseEventKind(r.EventType))
	if !c.DynamicPricing {
		return price
	}

	if isWeekend(r.EventDate) {
		price *= weekendSurcharge
	}
	if r.EventSize > groupSize {
		price *= groupSurcharge
	}
	if r.EventSize > largeGroupSize {
		price *= largeGroupSurcharge
	}
	if mult, ok := tierSurcharge[c.Tier]; ok {
		price *= mult
	}
	return price
}

func basePrice(c Candidate, kind EventKind) float64 {
	if kind != EventOther {
		if p, ok := c.BasePrices[kind]; ok {
			return p
		}
	}
	return c.BasePrices[EventFamily]
}

func isWeekend(date time.Time) bool {
	if date.IsZero() {
		return false
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
