package match

import "strings"

// EventKind is the closed set of event categories the lookup tables are
// keyed by. Free-text event types are folded into one with ParseEventKind.
type EventKind int

const (
	EventOther EventKind = iota
	EventFamily
	EventCasual
	EventCorporate
	EventWedding
	EventLuxury
)

var eventKindNames = map[EventKind]string{
	EventOther:     "other",
	EventFamily:    "family",
	EventCasual:    "casual",
	EventCorporate: "corporate",
	EventWedding:   "wedding",
	EventLuxury:    "luxury",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return eventKindNames[EventOther]
}

// MarshalText lets EventKind key JSON objects (price tables) by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the same keywords ParseEventKind does.
func (k *EventKind) UnmarshalText(b []byte) error {
	*k = ParseEventKind(string(b))
	return nil
}

type eventKeyword struct {
	keyword string
	kind    EventKind
}

// Ordered so that the more specific occasion wins: "wedding party" is a
// wedding and "corporate dinner" is corporate.
var eventKeywords = []eventKeyword{
	{"wedding", EventWedding},
	{"engagement", EventWedding},
	{"rehearsal", EventWedding},

	{"luxury", EventLuxury},
	{"gala", EventLuxury},
	{"fine dining", EventLuxury},
	{"tasting menu", EventLuxury},
	{"black tie", EventLuxury},

	{"corporate", EventCorporate},
	{"business", EventCorporate},
	{"office", EventCorporate},
	{"conference", EventCorporate},
	{"team", EventCorporate},

	{"family", EventFamily},
	{"kids", EventFamily},
	{"home", EventFamily},
	{"general", EventFamily},
	{"holiday", EventFamily},

	{"birthday", EventCasual},
	{"party", EventCasual},
	{"dinner", EventCasual},
	{"casual", EventCasual},
	{"brunch", EventCasual},
	{"bbq", EventCasual},
	{"barbecue", EventCasual},
}

// ParseEventKind maps a free-text event type onto an EventKind. Text that
// mentions none of the known keywords is EventOther.
func ParseEventKind(text string) EventKind {
	s := strings.ToLower(strings.Join(strings.Fields(text), " "))
	if s == "" {
		return EventOther
	}
	for kind, name := range eventKindNames {
		if s == name {
			return kind
		}
	}
	for _, entry := range eventKeywords {
		if strings.Contains(s, entry.keyword) {
			return entry.kind
		}
	}
	return EventOther
}

type tierRule struct {
	ideal      Tier
	acceptable map[Tier]bool
}

// tierRules lists, per event kind, which tiers suit it and which one is the
// curated ideal pairing. EventOther has no entry and scores the floor.
var tierRules = map[EventKind]tierRule{
	EventFamily: {
		ideal:      TierHome,
		acceptable: map[Tier]bool{TierHome: true, TierProfessional: true},
	},
	EventCasual: {
		ideal:      TierHome,
		acceptable: map[Tier]bool{TierHome: true, TierProfessional: true},
	},
	EventCorporate: {
		ideal:      TierProfessional,
		acceptable: map[Tier]bool{TierProfessional: true, TierElite: true},
	},
	EventWedding: {
		ideal:      TierElite,
		acceptable: map[Tier]bool{TierProfessional: true, TierElite: true},
	},
	EventLuxury: {
		ideal:      TierElite,
		acceptable: map[Tier]bool{TierProfessional: true, TierElite: true},
	},
}

// IsIdealPairing reports whether tier is the curated pick for kind.
func IsIdealPairing(tier Tier, kind EventKind) bool {
	rule, ok := tierRules[kind]
	return ok && rule.ideal == tier
}
